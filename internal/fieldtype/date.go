package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is a calendar date field in canonical YYYY-MM-DD form. Canonical
// forms order lexicographically, so bounds and range filters compare as
// plain strings.
type Date struct {
	textValue
}

func (Date) Type() string      { return TypeDate }
func (Date) TypeLabel() string { return "Date" }

func (Date) FieldInputs(f *field.Field) []input.Input {
	return temporalFieldInputs(f, input.TypeDate, "")
}

func (Date) FieldTableColumns(f field.Field) []TableColumn {
	return temporalFieldTableColumns(f)
}

func (Date) ValidateField(f field.Field) bool {
	return temporalBoundsOK(f, datePattern.MatchString)
}

func (Date) MapStoreField(f field.Field) map[string]any { return temporalMinMaxAttrs(f) }
func (Date) MapGetField(f field.Field) map[string]any   { return temporalMinMaxAttrs(f) }

func (Date) ValidateValue(f field.Field, v any) bool {
	return temporalValueOK(f, v, datePattern.MatchString)
}

func (Date) FormatKind(field.Field) string { return FormatKindDate }

func (Date) ValueAsFormat(_ field.Field, v any) any {
	s, _ := asString(v)
	var date any
	if s != "" {
		date = s
	}
	return map[string]any{"date": date, "show-as-utc": true}
}

func (Date) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	in := temporalInputBounds(f, input.Input{Type: input.TypeDate, Value: s})
	return &in
}

func (Date) FilterInputs(f field.Field) []input.Input {
	return temporalFilterInputs(f, input.TypeDate, "")
}

func (Date) MapFilterValue(_ field.Field, v any, _ string) any { return v }

func (Date) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return temporalFilterOK(f, v, attribute, datePattern.MatchString)
}

func (Date) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return temporalFilterMatch(v, filterValue, attribute)
}
