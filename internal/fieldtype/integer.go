package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Integer is a whole-number field with optional inclusive bounds.
type Integer struct {
	numericValue
}

func (Integer) Type() string      { return TypeInteger }
func (Integer) TypeLabel() string { return "Integer" }

func (Integer) FieldInputs(f *field.Field) []input.Input {
	return numericFieldInputs(f, "1")
}

func (Integer) FieldTableColumns(f field.Field) []TableColumn {
	return numericFieldTableColumns(f)
}

func (Integer) ValidateField(f field.Field) bool {
	return numericBoundsOK(f, true)
}

func (Integer) MapStoreField(f field.Field) map[string]any {
	return numericMinMaxAttrs(f)
}

func (Integer) MapGetField(f field.Field) map[string]any {
	return numericMinMaxAttrs(f)
}

func (Integer) ValidateValue(f field.Field, v any) bool {
	return numericValueOK(f, v, true)
}

func (Integer) ValueInput(f field.Field, v any) *input.Input {
	in := numberInputBounds(f, input.Input{Type: input.TypeNumber, Step: "1"})
	if n, _ := asNumber(v); n != nil {
		in.Value = *n
	}
	return &in
}

func (Integer) FilterInputs(f field.Field) []input.Input {
	return numericFilterInputs(f, "1")
}

func (Integer) MapFilterValue(_ field.Field, v any, _ string) any {
	return numericMapFilter(v)
}

func (Integer) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return numericFilterOK(f, v, attribute, true)
}

func (Integer) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return numericFilterMatch(v, filterValue, attribute)
}
