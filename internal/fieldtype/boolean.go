package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Boolean is a yes/no field. The canonical no-value form is false, so a
// required boolean must be true.
type Boolean struct {
	noAttrs
}

func (Boolean) Type() string      { return TypeBoolean }
func (Boolean) TypeLabel() string { return "Boolean" }

func (Boolean) ValidateValue(f field.Field, v any) bool {
	b, ok := asBool(v)
	if !ok {
		return false
	}
	if f.Required && !b {
		return false
	}
	return true
}

func (Boolean) MapStoreValue(_ field.Field, v any) any {
	b, _ := asBool(v)
	return b
}

func (Boolean) MapGetValue(_ field.Field, v any) any {
	b, _ := asBool(v)
	return b
}

func (Boolean) FormatKind(field.Field) string { return "" }

func (t Boolean) ValueAsText(f field.Field, v any) any {
	if b, _ := asBool(v); b {
		return "Yes"
	}
	return "No"
}

func (t Boolean) ValueAsFormat(f field.Field, v any) any {
	return t.ValueAsText(f, v)
}

func (Boolean) ValueInput(_ field.Field, v any) *input.Input {
	b, _ := asBool(v)
	return &input.Input{Type: input.TypeCheckbox, Value: b}
}

func (Boolean) FilterInputs(field.Field) []input.Input {
	return []input.Input{{Type: input.TypeCheckbox}}
}

func (Boolean) MapFilterValue(_ field.Field, v any, _ string) any {
	switch v {
	case "true":
		return true
	case "false":
		return false
	default:
		return v
	}
}

func (Boolean) ValidateFilterValue(_ field.Field, v any, attribute string) bool {
	if attribute != "" {
		return false
	}
	_, ok := asBool(v)
	return ok
}

func (Boolean) MatchFilterValue(_ field.Field, v, filterValue any, _ string) bool {
	b, _ := asBool(v)
	fv, _ := asBool(filterValue)
	return b == fv
}
