package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

var colorPattern = regexp.MustCompile(`^#[\da-f]{6}$`)

// Color is a lowercase #rrggbb color field.
type Color struct {
	noAttrs
	textValue
	equalityFilter
}

func (Color) Type() string      { return TypeColor }
func (Color) TypeLabel() string { return "Color" }

func (Color) FormatKind(field.Field) string { return FormatKindColor }

func (Color) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	return colorPattern.MatchString(s)
}

func (Color) ValueInput(_ field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{Type: input.TypeColor, Value: s}
}

func (Color) FilterInputs(field.Field) []input.Input {
	return []input.Input{{Type: input.TypeColor}}
}
