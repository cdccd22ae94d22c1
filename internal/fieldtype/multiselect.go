package fieldtype

import (
	"strings"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// MultipleSelect is a multi-choice field over a configured option list. Its
// canonical value is a set of option values; nil means the empty set.
type MultipleSelect struct{}

func (MultipleSelect) Type() string      { return TypeMultipleSelect }
func (MultipleSelect) TypeLabel() string { return "Multiple select" }

func (MultipleSelect) FieldInputs(f *field.Field) []input.Input { return optionsFieldInputs(f) }

func (MultipleSelect) FieldTableColumns(f field.Field) []TableColumn {
	return optionsTableColumns(f)
}

func (MultipleSelect) ValidateField(f field.Field) bool           { return optionsOK(f) }
func (MultipleSelect) MapStoreField(f field.Field) map[string]any { return optionsAttrs(f) }
func (MultipleSelect) MapGetField(f field.Field) map[string]any   { return optionsAttrs(f) }

func (MultipleSelect) ValidateValue(f field.Field, v any) bool {
	ss, ok := asStringSlice(v)
	if !ok {
		return false
	}
	if len(ss) == 0 {
		return !f.Required
	}
	if !uniqueStrings(ss) {
		return false
	}
	for _, s := range ss {
		if !f.HasOption(s) {
			return false
		}
	}
	return true
}

func (MultipleSelect) MapStoreValue(_ field.Field, v any) any {
	ss, _ := asStringSlice(v)
	if ss == nil {
		return []string{}
	}
	return ss
}

func (MultipleSelect) MapGetValue(_ field.Field, v any) any {
	ss, _ := asStringSlice(v)
	if ss == nil {
		return []string{}
	}
	return ss
}

func (MultipleSelect) FormatKind(field.Field) string { return "" }

func (MultipleSelect) ValueAsText(f field.Field, v any) any {
	ss, _ := asStringSlice(v)
	if len(ss) == 0 {
		return nil
	}
	labels := make([]string, 0, len(ss))
	for _, s := range ss {
		if label := f.OptionLabel(s); label != "" {
			labels = append(labels, label)
		} else {
			labels = append(labels, s)
		}
	}
	return strings.Join(labels, ", ")
}

func (m MultipleSelect) ValueAsFormat(f field.Field, v any) any {
	ss, _ := asStringSlice(v)
	labels := make([]string, 0, len(ss))
	for _, s := range ss {
		if label := f.OptionLabel(s); label != "" {
			labels = append(labels, label)
		} else {
			labels = append(labels, s)
		}
	}
	return labels
}

func (MultipleSelect) ValueInput(f field.Field, v any) *input.Input {
	ss, _ := asStringSlice(v)
	return &input.Input{
		Type:     input.TypeSelect,
		Multiple: true,
		Value:    ss,
		Options:  selectOptions(f),
	}
}

func (MultipleSelect) FilterInputs(f field.Field) []input.Input {
	return []input.Input{{
		Type:     input.TypeSelect,
		Multiple: true,
		Options:  selectOptions(f),
	}}
}

func (MultipleSelect) MapFilterValue(_ field.Field, v any, _ string) any {
	return splitFilterList(v)
}

func (MultipleSelect) ValidateFilterValue(f field.Field, v any, attribute string) bool {
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

// MatchFilterValue reports whether the stored set intersects the criterion
// set. The empty criterion matches only the empty stored set.
func (MultipleSelect) MatchFilterValue(_ field.Field, v, filterValue any, _ string) bool {
	ss, _ := asStringSlice(v)
	fv, ok := asStringSlice(filterValue)
	if !ok {
		return false
	}
	if len(fv) == 0 {
		return len(ss) == 0
	}
	for _, want := range fv {
		for _, have := range ss {
			if want == have {
				return true
			}
		}
	}
	return false
}
