package fieldtype

import (
	"strings"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// passwordMask replaces the stored secret in every read-side projection.
var passwordMask = strings.Repeat("●", 10)

// Password stores a secret string and never renders it back.
type Password struct {
	placeholderAttrs
	equalityFilter
}

func (Password) Type() string      { return TypePassword }
func (Password) TypeLabel() string { return "Password" }

func (Password) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if f.Required && s == "" {
		return false
	}
	return true
}

func (Password) MapStoreValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (Password) MapGetValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (Password) FormatKind(field.Field) string { return "" }

func (Password) ValueAsText(_ field.Field, v any) any {
	s, _ := asString(v)
	if s == "" {
		return nil
	}
	return passwordMask
}

func (Password) ValueAsFormat(_ field.Field, v any) any {
	s, _ := asString(v)
	if s == "" {
		return ""
	}
	return passwordMask
}

func (Password) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypePassword,
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (Password) FilterInputs(f field.Field) []input.Input {
	return []input.Input{{
		Type:        input.TypePassword,
		Placeholder: f.String(field.AttrPlaceholder),
	}}
}
