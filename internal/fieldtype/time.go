package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// Time is a time-of-day field in canonical HH:MM[:SS] form.
type Time struct {
	textValue
}

func (Time) Type() string      { return TypeTime }
func (Time) TypeLabel() string { return "Time" }

func (Time) FieldInputs(f *field.Field) []input.Input {
	return temporalFieldInputs(f, input.TypeTime, "1")
}

func (Time) FieldTableColumns(f field.Field) []TableColumn {
	return temporalFieldTableColumns(f)
}

func (Time) ValidateField(f field.Field) bool {
	return temporalBoundsOK(f, timePattern.MatchString)
}

func (Time) MapStoreField(f field.Field) map[string]any { return temporalMinMaxAttrs(f) }
func (Time) MapGetField(f field.Field) map[string]any   { return temporalMinMaxAttrs(f) }

func (Time) ValidateValue(f field.Field, v any) bool {
	return temporalValueOK(f, v, timePattern.MatchString)
}

func (Time) FormatKind(field.Field) string { return FormatKindTime }

func (Time) ValueAsFormat(_ field.Field, v any) any {
	s, _ := asString(v)
	var t any
	if s != "" {
		t = s
	}
	return map[string]any{"time": t, "show-as-utc": true}
}

func (Time) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	in := temporalInputBounds(f, input.Input{Type: input.TypeTime, Step: "1", Value: s})
	return &in
}

func (Time) FilterInputs(f field.Field) []input.Input {
	return temporalFilterInputs(f, input.TypeTime, "1")
}

func (Time) MapFilterValue(_ field.Field, v any, _ string) any { return v }

func (Time) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	return temporalFilterOK(f, v, attribute, timePattern.MatchString)
}

func (Time) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return temporalFilterMatch(v, filterValue, attribute)
}
