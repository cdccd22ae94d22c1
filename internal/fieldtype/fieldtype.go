// Package fieldtype implements the pluggable per-type behavior bundle of the
// store: validation, persistence mapping, rendering and filtering for every
// field type, dispatched through an open registry.
package fieldtype

import (
	"github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Built-in type discriminators.
const (
	TypeBoolean           = "boolean"
	TypeColor             = "color"
	TypeDate              = "date"
	TypeDateTime          = "datetime"
	TypeEmail             = "email"
	TypeFloat             = "float"
	TypeInteger           = "integer"
	TypeMultilineText     = "multiline-text"
	TypeMultipleSelect    = "multiple-select"
	TypeNumber            = "number"
	TypePassword          = "password"
	TypeRegularExpression = "regular-expression"
	TypeSelect            = "select"
	TypeText              = "text"
	TypeTime              = "time"
	TypeURL               = "url"
)

// Relational filter attributes. The empty attribute is a direct match.
const (
	FilterFrom     = "from"
	FilterTo       = "to"
	FilterContains = "contains"
)

// Format kinds handed to the formatting collaborator. The empty kind is
// plain passthrough.
const (
	FormatKindColor    = "color"
	FormatKindDate     = "date"
	FormatKindDateTime = "date-time"
	FormatKindEmail    = "email"
	FormatKindTime     = "time"
	FormatKindURL      = "url"
)

// TableColumn is one (label, value) pair of a field's additional table
// columns.
type TableColumn struct {
	Label string
	Value string
}

// FieldType is the capability contract every type variant implements. Every
// operation receives the owning field definition so it can read its
// type-specific attributes. Raw values arrive in their JSON-decoded shapes
// (nil, bool, float64, string, []string); nil always means "no value".
type FieldType interface {
	// Type returns the stable discriminator used as registry key and
	// persisted in the field definition.
	Type() string
	// TypeLabel returns the human-readable display name.
	TypeLabel() string

	// FieldInputs produces the editable attribute schema for creating or
	// editing a definition of this type. f is nil for a fresh definition.
	FieldInputs(f *field.Field) []input.Input
	// FieldTableColumns produces additional field-table columns; empty
	// values are dropped by the caller.
	FieldTableColumns(f field.Field) []TableColumn
	// ValidateField checks the type-specific attributes for internal
	// consistency. Called before a definition is persisted.
	ValidateField(f field.Field) bool
	// MapStoreField selects the type-specific attributes to persist.
	MapStoreField(f field.Field) map[string]any
	// MapGetField selects the type-specific attributes to expose, with
	// canonical defaults for absent ones.
	MapGetField(f field.Field) map[string]any

	// ValidateValue checks type conformance, declared bounds and the
	// required constraint. The single gate a value passes before storage.
	ValidateValue(f field.Field, v any) bool
	// MapStoreValue normalizes a validated value into its canonical
	// persisted form.
	MapStoreValue(f field.Field, v any) any
	// MapGetValue reconstructs the application-facing value from the
	// persisted form.
	MapGetValue(f field.Field, v any) any

	// FormatKind names the formatting collaborator kind for this type.
	FormatKind(f field.Field) string
	// ValueAsText renders the value for the text projection; the result is
	// passed through the formatting collaborator.
	ValueAsText(f field.Field, v any) any
	// ValueAsFormat produces the structured representation for the format
	// projection.
	ValueAsFormat(f field.Field, v any) any
	// ValueInput produces the edit widget bound to the current value.
	ValueInput(f field.Field, v any) *input.Input

	// FilterInputs produces the filter widgets: a direct-match input plus
	// the type's relational variants.
	FilterInputs(f field.Field) []input.Input
	// MapFilterValue normalizes a raw filter input into the comparable
	// value domain.
	MapFilterValue(f field.Field, v any, attribute string) any
	// ValidateFilterValue checks a filter value/attribute combination. A
	// nil value with an empty attribute is always well-formed (no filter).
	ValidateFilterValue(f field.Field, v any, attribute string) bool
	// MatchFilterValue reports whether the stored value satisfies the
	// criterion for the given relational attribute.
	MatchFilterValue(f field.Field, v, filterValue any, attribute string) bool
}

// Default returns a registry pre-populated with the built-in variants, in a
// stable registration order. Additional types may still be registered on it.
func Default() *Registry {
	r := NewRegistry()
	for _, ft := range []FieldType{
		Boolean{},
		Color{},
		Date{},
		DateTime{},
		Email{},
		Float{},
		Integer{},
		MultilineText{},
		MultipleSelect{},
		Number{},
		Password{},
		RegularExpression{},
		Select{},
		Text{},
		Time{},
		URL{},
	} {
		// Built-in discriminators are unique; Register cannot fail here.
		_ = r.Register(ft)
	}
	return r
}
