package fieldtype

import (
	"regexp"
	"strings"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// optionValuePattern keeps option values comma-free so filter criteria can be
// transported as comma-joined lists.
var optionValuePattern = regexp.MustCompile(`^[^,]+$`)

// optionsOK validates the configured option list: present, non-empty, string
// shaped, comma-free unique values.
func optionsOK(f field.Field) bool {
	raw, ok := f.Attrs[field.AttrOptions]
	if !ok || raw == nil {
		return false
	}
	opts := f.Options()
	if len(opts) == 0 {
		return false
	}
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		if !optionValuePattern.MatchString(o.Value) {
			return false
		}
		values = append(values, o.Value)
	}
	return uniqueStrings(values)
}

func optionsFieldInputs(f *field.Field) []input.Input {
	var opts []field.Option
	if f != nil {
		opts = f.Options()
	}
	entries := make([]input.Input, 0, len(opts))
	for _, o := range opts {
		entries = append(entries, input.Input{Name: o.Value, Label: o.Label})
	}
	return []input.Input{{
		Type:     input.TypeEntries,
		Name:     field.AttrOptions,
		Label:    "Options",
		Pattern:  optionValuePattern.String(),
		Required: true,
		Entries:  entries,
	}}
}

func optionsTableColumns(f field.Field) []TableColumn {
	opts := f.Options()
	labels := make([]string, 0, len(opts))
	for _, o := range opts {
		labels = append(labels, o.Label)
	}
	return []TableColumn{{Label: "Options", Value: strings.Join(labels, ", ")}}
}

func optionsAttrs(f field.Field) map[string]any {
	opts := f.Options()
	out := make([]map[string]any, 0, len(opts))
	for _, o := range opts {
		out = append(out, map[string]any{"value": o.Value, "label": o.Label})
	}
	return map[string]any{field.AttrOptions: out}
}

func selectOptions(f field.Field) []input.Option {
	opts := f.Options()
	out := make([]input.Option, 0, len(opts))
	for _, o := range opts {
		out = append(out, input.Option{Value: o.Value, Label: o.Label})
	}
	return out
}

// splitFilterList turns a raw filter value into the option-value list it
// transports: a comma-joined string, an already-decoded slice, or nil.
func splitFilterList(v any) any {
	switch fv := v.(type) {
	case string:
		if fv == "" {
			return []string{}
		}
		return strings.Split(fv, ",")
	case []any, []string:
		if ss, ok := asStringSlice(fv); ok {
			return ss
		}
		return v
	default:
		return v
	}
}

// Select is a single-choice field over a configured option list.
type Select struct{}

func (Select) Type() string      { return TypeSelect }
func (Select) TypeLabel() string { return "Select" }

func (Select) FieldInputs(f *field.Field) []input.Input { return optionsFieldInputs(f) }

func (Select) FieldTableColumns(f field.Field) []TableColumn {
	return optionsTableColumns(f)
}

func (Select) ValidateField(f field.Field) bool           { return optionsOK(f) }
func (Select) MapStoreField(f field.Field) map[string]any { return optionsAttrs(f) }
func (Select) MapGetField(f field.Field) map[string]any   { return optionsAttrs(f) }

func (Select) ValidateValue(f field.Field, v any) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	return f.HasOption(s)
}

func (Select) MapStoreValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (Select) MapGetValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (Select) FormatKind(field.Field) string { return "" }

func (Select) ValueAsText(f field.Field, v any) any {
	s, _ := asString(v)
	if s == "" {
		return nil
	}
	if label := f.OptionLabel(s); label != "" {
		return label
	}
	return s
}

func (s Select) ValueAsFormat(f field.Field, v any) any {
	if text := s.ValueAsText(f, v); text != nil {
		return text
	}
	return ""
}

func (Select) ValueInput(f field.Field, v any) *input.Input {
	s, _ := asString(v)
	return &input.Input{
		Type:    input.TypeSelect,
		Value:   s,
		Options: selectOptions(f),
	}
}

func (Select) FilterInputs(f field.Field) []input.Input {
	return []input.Input{{
		Type:     input.TypeSelect,
		Multiple: true,
		Options:  selectOptions(f),
	}}
}

func (Select) MapFilterValue(_ field.Field, v any, _ string) any {
	return splitFilterList(v)
}

// ValidateFilterValue accepts a list of configured option values; the stored
// value must be one of them to match.
func (Select) ValidateFilterValue(f field.Field, v any, attribute string) bool {
	if attribute != "" {
		return false
	}
	if v == nil {
		return true
	}
	ss, ok := asStringSlice(v)
	if !ok {
		return false
	}
	for _, s := range ss {
		if !f.HasOption(s) {
			return false
		}
	}
	return true
}

func (Select) MatchFilterValue(_ field.Field, v, filterValue any, _ string) bool {
	s, _ := asString(v)
	ss, ok := asStringSlice(filterValue)
	if !ok {
		return false
	}
	if len(ss) == 0 {
		return s == ""
	}
	for _, fv := range ss {
		if s == fv {
			return true
		}
	}
	return false
}
