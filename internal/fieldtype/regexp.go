package fieldtype

import (
	"regexp"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// RegularExpression is a text field whose values must match a pattern
// configured on the definition. The pattern is unanchored; it checks for a
// matching substring the way a bare regexp test does.
type RegularExpression struct {
	textValue
	passthroughFilter
}

func (RegularExpression) Type() string      { return TypeRegularExpression }
func (RegularExpression) TypeLabel() string { return "Regular expression" }

func (RegularExpression) FieldInputs(f *field.Field) []input.Input {
	pattern, placeholder := "", ""
	if f != nil {
		pattern = f.String(field.AttrRegularExpression)
		placeholder = f.String(field.AttrPlaceholder)
	}
	return []input.Input{
		{
			Type:     input.TypeText,
			Name:     field.AttrRegularExpression,
			Label:    "Regular expression",
			Value:    pattern,
			Required: true,
		},
		{
			Type:  input.TypeText,
			Name:  field.AttrPlaceholder,
			Label: "Placeholder",
			Value: placeholder,
		},
	}
}

func (RegularExpression) FieldTableColumns(f field.Field) []TableColumn {
	return []TableColumn{
		{Label: "Regular expression", Value: f.String(field.AttrRegularExpression)},
		{Label: "Placeholder", Value: f.String(field.AttrPlaceholder)},
	}
}

func (RegularExpression) ValidateField(f field.Field) bool {
	if !attrIsString(f, field.AttrRegularExpression) || !attrIsString(f, field.AttrPlaceholder) {
		return false
	}
	pattern := f.String(field.AttrRegularExpression)
	if pattern == "" {
		return false
	}
	_, err := regexp.Compile(pattern)
	return err == nil
}

func (RegularExpression) MapStoreField(f field.Field) map[string]any {
	return map[string]any{
		field.AttrRegularExpression: f.String(field.AttrRegularExpression),
		field.AttrPlaceholder:       f.String(field.AttrPlaceholder),
	}
}

func (RegularExpression) MapGetField(f field.Field) map[string]any {
	return map[string]any{
		field.AttrRegularExpression: f.String(field.AttrRegularExpression),
		field.AttrPlaceholder:       f.String(field.AttrPlaceholder),
	}
}

func (RegularExpression) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	re, err := regexp.Compile(f.String(field.AttrRegularExpression))
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

func (RegularExpression) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypeText,
		Pattern:     f.String(field.AttrRegularExpression),
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (RegularExpression) FilterInputs(f field.Field) []input.Input {
	return textFilterInputs(f, input.TypeText)
}
