package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Text is a single-line free-text field with an optional placeholder.
type Text struct {
	placeholderAttrs
	textValue
	passthroughFilter
}

func (Text) Type() string      { return TypeText }
func (Text) TypeLabel() string { return "Text" }

func (Text) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if f.Required && s == "" {
		return false
	}
	return true
}

func (Text) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypeText,
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (Text) FilterInputs(f field.Field) []input.Input {
	return textFilterInputs(f, input.TypeText)
}

// MultilineText is a multi-line free-text field rendered as a textarea.
type MultilineText struct {
	placeholderAttrs
	textValue
	passthroughFilter
}

func (MultilineText) Type() string      { return TypeMultilineText }
func (MultilineText) TypeLabel() string { return "Multiline text" }

func (MultilineText) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if f.Required && s == "" {
		return false
	}
	return true
}

func (MultilineText) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypeTextarea,
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (MultilineText) FilterInputs(f field.Field) []input.Input {
	return textFilterInputs(f, input.TypeText)
}
