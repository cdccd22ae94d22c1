package fieldtype

import (
	"net/url"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// URL is an absolute-URL field with an optional placeholder.
type URL struct {
	placeholderAttrs
	textValue
}

func (URL) Type() string      { return TypeURL }
func (URL) TypeLabel() string { return "Url" }

func (URL) FormatKind(field.Field) string { return FormatKindURL }

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func (URL) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	return validURL(s)
}

func (URL) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:        input.TypeURL,
		Placeholder: f.String(field.AttrPlaceholder),
		Value:       s,
	}
}

func (URL) FilterInputs(f field.Field) []input.Input {
	return textFilterInputs(f, input.TypeURL)
}

func (URL) MapFilterValue(_ field.Field, v any, _ string) any { return v }

// ValidateFilterValue requires a parseable URL for direct matches; a
// contains filter is a free substring.
func (URL) ValidateFilterValue(_ field.Field, v any, attribute string) bool {
	if !textFilterOK(v, attribute) {
		return false
	}
	s, _ := asString(v)
	if attribute == "" && s != "" && !validURL(s) {
		return false
	}
	return true
}

func (URL) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return textFilterMatch(v, filterValue, attribute)
}
