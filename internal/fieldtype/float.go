package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// maxFloatStep keeps the required fractional granularity strictly below a
// whole unit; integral steps belong to the integer type.
const maxFloatStep = 1 - minStepValue

// Float is a fractional numeric field. Its input step granularity is a
// required attribute and must itself be fractional.
type Float struct {
	numericValue
}

func (Float) Type() string      { return TypeFloat }
func (Float) TypeLabel() string { return "Float" }

func (Float) step(f field.Field) string {
	if s := f.Number(field.AttrStepValue); s != nil {
		return formatNumber(*s)
	}
	return "any"
}

func (fl Float) FieldInputs(f *field.Field) []input.Input {
	var stepV any
	if f != nil {
		if s := f.Number(field.AttrStepValue); s != nil {
			stepV = *s
		}
	}
	inputs := numericFieldInputs(f, "any")
	return append(inputs, input.Input{
		Type:     input.TypeNumber,
		Name:     field.AttrStepValue,
		Label:    "Step value",
		Step:     "any",
		Min:      formatNumber(minStepValue),
		Max:      formatNumber(maxFloatStep),
		Required: true,
		Value:    stepV,
	})
}

func (Float) FieldTableColumns(f field.Field) []TableColumn {
	cols := numericFieldTableColumns(f)
	step := TableColumn{Label: "Step value"}
	if s := f.Number(field.AttrStepValue); s != nil {
		step.Value = formatNumber(*s)
	}
	return append(cols, step)
}

func (Float) ValidateField(f field.Field) bool {
	if !numericBoundsOK(f, false) || !attrIsNumber(f, field.AttrStepValue, false) {
		return false
	}
	s := f.Number(field.AttrStepValue)
	if s == nil {
		return false
	}
	return *s >= minStepValue && *s <= maxFloatStep
}

func (Float) MapStoreField(f field.Field) map[string]any {
	attrs := numericMinMaxAttrs(f)
	attrs[field.AttrStepValue] = nil
	if s := f.Number(field.AttrStepValue); s != nil {
		attrs[field.AttrStepValue] = *s
	}
	return attrs
}

func (fl Float) MapGetField(f field.Field) map[string]any {
	return fl.MapStoreField(f)
}

func (Float) ValidateValue(f field.Field, v any) bool {
	return numericValueOK(f, v, false)
}

func (fl Float) ValueInput(f field.Field, v any) *input.Input {
	in := numberInputBounds(f, input.Input{Type: input.TypeNumber, Step: fl.step(f)})
	if n, _ := asNumber(v); n != nil {
		in.Value = *n
	}
	return &in
}

func (fl Float) FilterInputs(f field.Field) []input.Input {
	return numericFilterInputs(f, fl.step(f))
}

func (Float) MapFilterValue(_ field.Field, v any, _ string) any {
	return numericMapFilter(v)
}

func (Float) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return numericFilterOK(f, v, attribute, false)
}

func (Float) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return numericFilterMatch(v, filterValue, attribute)
}
