package fieldtype

import (
	"math"
	"strconv"
	"strings"

	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Raw values arrive JSON-decoded: nil, bool, float64, string or []any of
// strings. The coercions below normalize them; nil is always accepted as
// "no value".

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	default:
		return "", false
	}
}

func asNumber(v any) (*float64, bool) {
	switch n := v.(type) {
	case nil:
		return nil, true
	case float64:
		return &n, true
	case int:
		f := float64(n)
		return &f, true
	default:
		return nil, false
	}
}

func asBool(v any) (bool, bool) {
	switch b := v.(type) {
	case nil:
		return false, true
	case bool:
		return b, true
	default:
		return false, false
	}
}

func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func uniqueStrings(ss []string) bool {
	seen := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			return false
		}
		seen[s] = struct{}{}
	}
	return true
}

// attrIsString reports whether the attribute under key, when present, is a
// string. Absent attributes default to "".
func attrIsString(f field.Field, key string) bool {
	raw, ok := f.Attrs[key]
	if !ok || raw == nil {
		return true
	}
	_, ok = raw.(string)
	return ok
}

// attrIsNumber reports whether the attribute under key, when present, is a
// finite number (integer-valued when integer is set).
func attrIsNumber(f field.Field, key string, integer bool) bool {
	raw, ok := f.Attrs[key]
	if !ok || raw == nil {
		return true
	}
	n, ok := asNumber(raw)
	if !ok || n == nil || math.IsInf(*n, 0) || math.IsNaN(*n) {
		return false
	}
	if integer && *n != math.Trunc(*n) {
		return false
	}
	return true
}

// --- shared value mappings ---

// textValue carries the canonical "" no-value mapping of the free-text-like
// types.
type textValue struct{}

func (textValue) MapStoreValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (textValue) MapGetValue(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (textValue) ValueAsText(_ field.Field, v any) any {
	s, _ := asString(v)
	if s == "" {
		return nil
	}
	return s
}

func (textValue) ValueAsFormat(_ field.Field, v any) any {
	s, _ := asString(v)
	return s
}

func (textValue) FormatKind(field.Field) string { return "" }

// numericValue carries the nil no-value mapping of the numeric types.
type numericValue struct{}

func (numericValue) MapStoreValue(_ field.Field, v any) any {
	if n, _ := asNumber(v); n != nil {
		return *n
	}
	return nil
}

func (numericValue) MapGetValue(_ field.Field, v any) any {
	if n, _ := asNumber(v); n != nil {
		return *n
	}
	return nil
}

func (numericValue) ValueAsText(_ field.Field, v any) any {
	if n, _ := asNumber(v); n != nil {
		return *n
	}
	return nil
}

func (numericValue) ValueAsFormat(_ field.Field, v any) any {
	if n, _ := asNumber(v); n != nil {
		return *n
	}
	return nil
}

func (numericValue) FormatKind(field.Field) string { return "" }

// noAttrs is embedded by types without type-specific attributes.
type noAttrs struct{}

func (noAttrs) FieldInputs(*field.Field) []input.Input      { return nil }
func (noAttrs) FieldTableColumns(field.Field) []TableColumn { return nil }
func (noAttrs) ValidateField(field.Field) bool              { return true }
func (noAttrs) MapStoreField(field.Field) map[string]any    { return nil }
func (noAttrs) MapGetField(field.Field) map[string]any      { return nil }

// placeholderAttrs is embedded by types whose only attribute is a
// placeholder.
type placeholderAttrs struct{}

func (placeholderAttrs) FieldInputs(f *field.Field) []input.Input {
	value := ""
	if f != nil {
		value = f.String(field.AttrPlaceholder)
	}
	return []input.Input{{
		Type:  input.TypeText,
		Name:  field.AttrPlaceholder,
		Label: "Placeholder",
		Value: value,
	}}
}

func (placeholderAttrs) FieldTableColumns(f field.Field) []TableColumn {
	return []TableColumn{{Label: "Placeholder", Value: f.String(field.AttrPlaceholder)}}
}

func (placeholderAttrs) ValidateField(f field.Field) bool {
	return attrIsString(f, field.AttrPlaceholder)
}

func (placeholderAttrs) MapStoreField(f field.Field) map[string]any {
	return map[string]any{field.AttrPlaceholder: f.String(field.AttrPlaceholder)}
}

func (placeholderAttrs) MapGetField(f field.Field) map[string]any {
	return map[string]any{field.AttrPlaceholder: f.String(field.AttrPlaceholder)}
}

// --- shared filter behaviors ---

// passthroughFilter maps and validates filters for direct-or-contains
// text-like types.
type passthroughFilter struct{}

func (passthroughFilter) MapFilterValue(_ field.Field, v any, _ string) any { return v }

func (passthroughFilter) ValidateFilterValue(_ field.Field, v any, attribute string) bool {
	return textFilterOK(v, attribute)
}

func (passthroughFilter) MatchFilterValue(_ field.Field, v, filterValue any, attribute string) bool {
	return textFilterMatch(v, filterValue, attribute)
}

func textFilterOK(v any, attribute string) bool {
	if attribute != "" && attribute != FilterContains {
		return false
	}
	if v == nil {
		return attribute == ""
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return attribute == "" || s != ""
}

func textFilterMatch(v, filterValue any, attribute string) bool {
	s, _ := asString(v)
	fv, _ := asString(filterValue)
	if attribute == FilterContains {
		return containsFold(s, fv)
	}
	return s == fv
}

// equalityFilter restricts filtering to direct string equality.
type equalityFilter struct{}

func (equalityFilter) MapFilterValue(_ field.Field, v any, _ string) any { return v }

func (equalityFilter) ValidateFilterValue(_ field.Field, v any, attribute string) bool {
	if attribute != "" {
		return false
	}
	if v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

func (equalityFilter) MatchFilterValue(_ field.Field, v, filterValue any, _ string) bool {
	s, _ := asString(v)
	fv, _ := asString(filterValue)
	return s == fv
}

// textFilterInputs builds the direct-match plus contains filter widgets for
// text-like fields.
func textFilterInputs(f field.Field, inputType string) []input.Input {
	return []input.Input{
		{
			Type:        inputType,
			Placeholder: f.String(field.AttrPlaceholder),
		},
		{
			Type:        input.TypeText,
			Name:        FilterContains,
			Label:       f.Label + " contains",
			Placeholder: f.String(field.AttrPlaceholder),
			Required:    true,
		},
	}
}

// --- shared numeric bounds/filters ---

func numberInputBounds(f field.Field, in input.Input) input.Input {
	if min := f.Number(field.AttrMinimalValue); min != nil {
		in.Min = formatNumber(*min)
	}
	if max := f.Number(field.AttrMaximalValue); max != nil {
		in.Max = formatNumber(*max)
	}
	return in
}

func numericBoundsOK(f field.Field, integer bool) bool {
	if !attrIsNumber(f, field.AttrMinimalValue, integer) || !attrIsNumber(f, field.AttrMaximalValue, integer) {
		return false
	}
	min := f.Number(field.AttrMinimalValue)
	max := f.Number(field.AttrMaximalValue)
	if min != nil && max != nil && *min > *max {
		return false
	}
	return true
}

func numericValueOK(f field.Field, v any, integer bool) bool {
	n, ok := asNumber(v)
	if !ok {
		return false
	}
	if n == nil {
		return !f.Required
	}
	if math.IsInf(*n, 0) || math.IsNaN(*n) {
		return false
	}
	if integer && *n != math.Trunc(*n) {
		return false
	}
	if min := f.Number(field.AttrMinimalValue); min != nil && *n < *min {
		return false
	}
	if max := f.Number(field.AttrMaximalValue); max != nil && *n > *max {
		return false
	}
	return true
}

func numericFieldTableColumns(f field.Field) []TableColumn {
	cols := []TableColumn{{Label: "Minimal value"}, {Label: "Maximal value"}}
	if min := f.Number(field.AttrMinimalValue); min != nil {
		cols[0].Value = formatNumber(*min)
	}
	if max := f.Number(field.AttrMaximalValue); max != nil {
		cols[1].Value = formatNumber(*max)
	}
	return cols
}

func numericMinMaxAttrs(f field.Field) map[string]any {
	attrs := map[string]any{
		field.AttrMinimalValue: nil,
		field.AttrMaximalValue: nil,
	}
	if min := f.Number(field.AttrMinimalValue); min != nil {
		attrs[field.AttrMinimalValue] = *min
	}
	if max := f.Number(field.AttrMaximalValue); max != nil {
		attrs[field.AttrMaximalValue] = *max
	}
	return attrs
}

func numericFieldInputs(f *field.Field, step string) []input.Input {
	var minV, maxV any
	if f != nil {
		if min := f.Number(field.AttrMinimalValue); min != nil {
			minV = *min
		}
		if max := f.Number(field.AttrMaximalValue); max != nil {
			maxV = *max
		}
	}
	return []input.Input{
		{Type: input.TypeNumber, Name: field.AttrMinimalValue, Label: "Minimal value", Step: step, Value: minV},
		{Type: input.TypeNumber, Name: field.AttrMaximalValue, Label: "Maximal value", Step: step, Value: maxV},
	}
}

func numericFilterInputs(f field.Field, step string) []input.Input {
	base := numberInputBounds(f, input.Input{Type: input.TypeNumber, Step: step})
	from := base
	from.Name = FilterFrom
	from.Label = f.Label + " from"
	from.Required = true
	to := base
	to.Name = FilterTo
	to.Label = f.Label + " to"
	to.Required = true
	return []input.Input{base, from, to}
}

func numericMapFilter(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s == "null" {
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return v
}

func numericFilterOK(f field.Field, v any, attribute string, integer bool) bool {
	switch attribute {
	case "", FilterFrom, FilterTo:
	default:
		return false
	}
	if v == nil {
		return attribute == ""
	}
	return numericValueOK(field.Field{Attrs: f.Attrs}, v, integer)
}

func numericFilterMatch(v, filterValue any, attribute string) bool {
	n, _ := asNumber(v)
	fv, _ := asNumber(filterValue)
	switch attribute {
	case FilterFrom:
		return n != nil && fv != nil && *n >= *fv
	case FilterTo:
		return n != nil && fv != nil && *n <= *fv
	default:
		if n == nil || fv == nil {
			return n == nil && fv == nil
		}
		return *n == *fv
	}
}

// --- shared temporal (string-ordered) bounds/filters ---

func temporalBoundsOK(f field.Field, matches func(string) bool) bool {
	if !attrIsString(f, field.AttrMinimalValue) || !attrIsString(f, field.AttrMaximalValue) {
		return false
	}
	min := f.String(field.AttrMinimalValue)
	max := f.String(field.AttrMaximalValue)
	if min != "" && !matches(min) {
		return false
	}
	if max != "" && !matches(max) {
		return false
	}
	// Canonical forms order lexicographically.
	if min != "" && max != "" && min > max {
		return false
	}
	return true
}

func temporalValueOK(f field.Field, v any, matches func(string) bool) bool {
	s, ok := asString(v)
	if !ok {
		return false
	}
	if s == "" {
		return !f.Required
	}
	if !matches(s) {
		return false
	}
	if min := f.String(field.AttrMinimalValue); min != "" && s < min {
		return false
	}
	if max := f.String(field.AttrMaximalValue); max != "" && s > max {
		return false
	}
	return true
}

func temporalInputBounds(f field.Field, in input.Input) input.Input {
	in.Min = f.String(field.AttrMinimalValue)
	in.Max = f.String(field.AttrMaximalValue)
	return in
}

func temporalFieldInputs(f *field.Field, inputType, step string) []input.Input {
	minV, maxV := "", ""
	if f != nil {
		minV = f.String(field.AttrMinimalValue)
		maxV = f.String(field.AttrMaximalValue)
	}
	return []input.Input{
		{Type: inputType, Name: field.AttrMinimalValue, Label: "Minimal value", Step: step, Value: minV},
		{Type: inputType, Name: field.AttrMaximalValue, Label: "Maximal value", Step: step, Value: maxV},
	}
}

func temporalFieldTableColumns(f field.Field) []TableColumn {
	return []TableColumn{
		{Label: "Minimal value", Value: f.String(field.AttrMinimalValue)},
		{Label: "Maximal value", Value: f.String(field.AttrMaximalValue)},
	}
}

func temporalMinMaxAttrs(f field.Field) map[string]any {
	return map[string]any{
		field.AttrMinimalValue: f.String(field.AttrMinimalValue),
		field.AttrMaximalValue: f.String(field.AttrMaximalValue),
	}
}

func temporalFilterInputs(f field.Field, inputType, step string) []input.Input {
	base := temporalInputBounds(f, input.Input{Type: inputType, Step: step})
	from := base
	from.Name = FilterFrom
	from.Label = f.Label + " from"
	from.Required = true
	to := base
	to.Name = FilterTo
	to.Label = f.Label + " to"
	to.Required = true
	return []input.Input{base, from, to}
}

func temporalFilterOK(f field.Field, v any, attribute string, matches func(string) bool) bool {
	switch attribute {
	case "", FilterFrom, FilterTo:
	default:
		return false
	}
	if v == nil {
		return attribute == ""
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	if attribute != "" && s == "" {
		return false
	}
	if s == "" {
		return true
	}
	if !matches(s) {
		return false
	}
	if min := f.String(field.AttrMinimalValue); min != "" && s < min {
		return false
	}
	if max := f.String(field.AttrMaximalValue); max != "" && s > max {
		return false
	}
	return true
}

func temporalFilterMatch(v, filterValue any, attribute string) bool {
	s, _ := asString(v)
	fv, _ := asString(filterValue)
	switch attribute {
	case FilterFrom:
		return s != "" && s >= fv
	case FilterTo:
		return s != "" && s <= fv
	default:
		return s == fv
	}
}
