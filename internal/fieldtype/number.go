package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// minStepValue is the smallest accepted input granularity.
const minStepValue = 1e-6

// Number is an arbitrary-precision numeric field with optional bounds and an
// optional input step granularity.
type Number struct {
	numericValue
}

func (Number) Type() string      { return TypeNumber }
func (Number) TypeLabel() string { return "Number" }

// step returns the configured granularity as an input step attribute, "any"
// when unset.
func (Number) step(f field.Field) string {
	if s := f.Number(field.AttrStepValue); s != nil {
		return formatNumber(*s)
	}
	return "any"
}

func (n Number) FieldInputs(f *field.Field) []input.Input {
	var stepV any
	if f != nil {
		if s := f.Number(field.AttrStepValue); s != nil {
			stepV = *s
		}
	}
	inputs := numericFieldInputs(f, "any")
	return append(inputs, input.Input{
		Type:  input.TypeNumber,
		Name:  field.AttrStepValue,
		Label: "Step value",
		Step:  "any",
		Min:   formatNumber(minStepValue),
		Value: stepV,
	})
}

func (Number) FieldTableColumns(f field.Field) []TableColumn {
	cols := numericFieldTableColumns(f)
	step := TableColumn{Label: "Step value"}
	if s := f.Number(field.AttrStepValue); s != nil {
		step.Value = formatNumber(*s)
	}
	return append(cols, step)
}

func (Number) ValidateField(f field.Field) bool {
	if !numericBoundsOK(f, false) || !attrIsNumber(f, field.AttrStepValue, false) {
		return false
	}
	if s := f.Number(field.AttrStepValue); s != nil && *s < minStepValue {
		return false
	}
	return true
}

func (Number) MapStoreField(f field.Field) map[string]any {
	attrs := numericMinMaxAttrs(f)
	attrs[field.AttrStepValue] = nil
	if s := f.Number(field.AttrStepValue); s != nil {
		attrs[field.AttrStepValue] = *s
	}
	return attrs
}

func (n Number) MapGetField(f field.Field) map[string]any {
	return n.MapStoreField(f)
}

func (Number) ValidateValue(f field.Field, v any) bool {
	return numericValueOK(f, v, false)
}

func (n Number) ValueInput(f field.Field, v any) *input.Input {
	in := numberInputBounds(f, input.Input{Type: input.TypeNumber, Step: n.step(f)})
	if num, _ := asNumber(v); num != nil {
		in.Value = *num
	}
	return &in
}

func (n Number) FilterInputs(f field.Field) []input.Input {
	return numericFilterInputs(f, n.step(f))
}

func (Number) MapFilterValue(_ field.Field, v any, _ string) any {
	return numericMapFilter(v)
}

func (Number) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return numericFilterOK(f, v, attribute, false)
}

func (Number) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return numericFilterMatch(v, filterValue, attribute)
}
