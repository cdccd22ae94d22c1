package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

var dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2})?$`)

// DateTime is a combined date and time field in canonical
// YYYY-MM-DDTHH:MM[:SS] form.
type DateTime struct {
	textValue
}

func (DateTime) Type() string      { return TypeDateTime }
func (DateTime) TypeLabel() string { return "Date time" }

func (DateTime) FieldInputs(f *field.Field) []input.Input {
	return temporalFieldInputs(f, input.TypeDateTime, "1")
}

func (DateTime) FieldTableColumns(f field.Field) []TableColumn {
	return temporalFieldTableColumns(f)
}

func (DateTime) ValidateField(f field.Field) bool {
	return temporalBoundsOK(f, dateTimePattern.MatchString)
}

func (DateTime) MapStoreField(f field.Field) map[string]any { return temporalMinMaxAttrs(f) }
func (DateTime) MapGetField(f field.Field) map[string]any   { return temporalMinMaxAttrs(f) }

func (DateTime) ValidateValue(f field.Field, v any) bool {
	return temporalValueOK(f, v, dateTimePattern.MatchString)
}

func (DateTime) FormatKind(field.Field) string { return FormatKindDateTime }

func (DateTime) ValueAsFormat(_ field.Field, v any) any {
	s, _ := asString(v)
	var dateTime any
	if s != "" {
		dateTime = s
	}
	return map[string]any{"date-time": dateTime, "show-as-utc": true}
}

func (DateTime) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	in := temporalInputBounds(f, input.Input{Type: input.TypeDateTime, Step: "1", Value: s})
	return &in
}

func (DateTime) FilterInputs(f field.Field) []input.Input {
	return temporalFilterInputs(f, input.TypeDateTime, "1")
}

func (DateTime) MapFilterValue(_ field.Field, v any, _ string) any { return v }

func (DateTime) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return temporalFilterOK(f, v, attribute, dateTimePattern.MatchString)
}

func (DateTime) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return temporalFilterMatch(v, filterValue, attribute)
}
