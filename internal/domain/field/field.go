// Package field defines the FieldDefinition value object: a named, typed
// schema slot that value records conform to.
package field

import "regexp"

// NamePattern restricts field and record names to letters, digits, dashes,
// underscores and dots.
var NamePattern = regexp.MustCompile(`^[\w\-.]+$`)

// ValidName reports whether name matches NamePattern.
func ValidName(name string) bool {
	return name != "" && NamePattern.MatchString(name)
}

// Position ordering constants. Positions are kept as dense multiples of Step
// so an item can be relocated between neighbors without renumbering; Move is
// the half-step that lands a moved item strictly between its new neighbors
// before re-densification.
const (
	PositionStart = 0
	PositionStep  = 10
	PositionMove  = 5
)

// Well-known type-specific attribute keys.
const (
	AttrMinimalValue      = "minimal-value"
	AttrMaximalValue      = "maximal-value"
	AttrStepValue         = "step-value"
	AttrOptions           = "options"
	AttrPlaceholder       = "placeholder"
	AttrRegularExpression = "regular-expression"
)

// Option is one selectable entry of a select or multiple-select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is a field definition. ID and Position are internal bookkeeping and
// are stripped from external views. Attrs holds the type-specific extra
// attributes under the keys above; which keys are meaningful is decided by
// the field's type variant.
type Field struct {
	ID       string
	Position int
	Type     string
	Name     string
	Label    string
	Subtitle string
	Required bool
	Attrs    map[string]any
}

// Number returns the numeric attribute under key, or nil when absent or not
// a number.
func (f Field) Number(key string) *float64 {
	switch v := f.Attrs[key].(type) {
	case float64:
		return &v
	case int:
		n := float64(v)
		return &n
	default:
		return nil
	}
}

// String returns the string attribute under key, defaulting to "".
func (f Field) String(key string) string {
	if s, ok := f.Attrs[key].(string); ok {
		return s
	}
	return ""
}

// Options returns the configured options of a select-like field. JSON
// decoding yields []any of map[string]any, the variant mappings yield
// []map[string]any, and a typed []Option (set by code) is returned as-is.
func (f Field) Options() []Option {
	switch v := f.Attrs[AttrOptions].(type) {
	case []Option:
		return v
	case []map[string]any:
		opts := make([]Option, 0, len(v))
		for _, m := range v {
			opts = append(opts, optionFromMap(m))
		}
		return opts
	case []any:
		opts := make([]Option, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil
			}
			opts = append(opts, optionFromMap(m))
		}
		return opts
	default:
		return nil
	}
}

func optionFromMap(m map[string]any) Option {
	value, _ := m["value"].(string)
	label, _ := m["label"].(string)
	return Option{Value: value, Label: label}
}

// OptionLabel returns the label of the option with the given value, or ""
// when no such option is configured.
func (f Field) OptionLabel(value string) string {
	for _, o := range f.Options() {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// HasOption reports whether value is one of the configured option values.
func (f Field) HasOption(value string) bool {
	for _, o := range f.Options() {
		if o.Value == value {
			return true
		}
	}
	return false
}
