// Package value defines the ValueRecord aggregate: a named record holding one
// raw value per field definition, plus the filter specification used when
// listing records.
package value

// FieldValue is one stored (field, raw value) pair of a record. Value holds
// the canonical persisted form produced by the field type's store mapping;
// nil means "no value".
type FieldValue struct {
	FieldID string
	Value   any
}

// Record is a value record as persisted: a stable id, an immutable name and
// one row per field. The row set is always interpreted relative to the live
// field definition list.
type Record struct {
	ID     string
	Name   string
	Values []FieldValue
}

// Lookup returns the stored raw value for a field id, nil when the record
// carries no row for it.
func (r Record) Lookup(fieldID string) any {
	for _, fv := range r.Values {
		if fv.FieldID == fieldID {
			return fv.Value
		}
	}
	return nil
}

// NamedValue is one (field name, application-facing value) pair of a record
// as exposed externally, after get-side mapping.
type NamedValue struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Value is the external view of a record: the immutable name plus one entry
// per live field definition.
type Value struct {
	Name   string       `json:"name"`
	Values []NamedValue `json:"values"`
}

// Lookup returns the value for a field name, nil when absent.
func (v Value) Lookup(name string) any {
	for _, nv := range v.Values {
		if nv.Name == name {
			return nv.Value
		}
	}
	return nil
}

// TextValue is one per-field entry of the text projection of a record.
type TextValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Text  string `json:"value"`
}

// FormatValue is one per-field entry of the structured format projection.
// Kind names the formatting collaborator's value kind ("" for plain).
type FormatValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  string `json:"type,omitempty"`
	Value any    `json:"value"`
}

// FieldFilter is a single per-field filter criterion. Attribute selects the
// relational variant ("from", "to", "contains"); "" means direct match. Value
// is the raw filter input before type mapping.
type FieldFilter struct {
	Field     string
	Attribute string
	Value     any
}

// Filter restricts a record listing. The zero value matches everything.
type Filter struct {
	// Name, when non-empty, matches exactly one record name.
	Name string
	// HasValue, when set, keeps stored records (true) or selects names with
	// no stored record (false; only meaningful together with Name).
	HasValue *bool
	// Fields are the per-field criteria; all must hold.
	Fields []FieldFilter
}

// IsZero reports whether the filter imposes no restriction.
func (f Filter) IsZero() bool {
	return f.Name == "" && f.HasValue == nil && len(f.Fields) == 0
}
