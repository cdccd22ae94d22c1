package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// WHATWG "valid email address" pattern.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// Email is an email address field with an optional placeholder.
type Email struct {
	placeholderAttrs
	textValue
	passthroughFilter
}

func (Email) Type() string      { return TypeEmail }
func (Email) TypeLabel() string { return "Email" }

func (Email) FormatKind(field.Field) string { return FormatKindEmail }

func (Email) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	return emailPattern.MatchString(s)
}

func (Email) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypeEmail,
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (Email) FilterInputs(f field.Field) []input.Input {
	return textFilterInputs(f, input.TypeText)
}
