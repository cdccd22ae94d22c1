// Package input holds the widget and table descriptor types the core hands
// to the UI layer. The UI treats them as opaque rendering instructions; the
// core only builds them.
package input

// Input widget type discriminators.
const (
	TypeCheckbox = "checkbox"
	TypeColor    = "color"
	TypeDate     = "date"
	TypeDateTime = "datetime-local"
	TypeEmail    = "email"
	TypeEntries  = "entries"
	TypeHidden   = "hidden"
	TypeNumber   = "number"
	TypePassword = "password"
	TypeSelect   = "select"
	TypeText     = "text"
	TypeTextarea = "textarea"
	TypeTime     = "time"
	TypeURL      = "url"
)

// Option is a selectable entry of a select input.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Input is an editable widget descriptor bound to a value and its
// constraints. Empty constraint fields are omitted from the wire form.
type Input struct {
	Type        string   `json:"type"`
	Name        string   `json:"name,omitempty"`
	Label       string   `json:"label,omitempty"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Value       any      `json:"value,omitempty"`
	Required    bool     `json:"required,omitempty"`
	ReadOnly    bool     `json:"read-only,omitempty"`
	Multiple    bool     `json:"multiple,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Min         string   `json:"min,omitempty"`
	Max         string   `json:"max,omitempty"`
	Step        string   `json:"step,omitempty"`
	Options     []Option `json:"options,omitempty"`
	Entries     []Input  `json:"entries,omitempty"`
}

// Column describes one column of a table projection. Kind names the
// formatting collaborator's value kind for the column, "" for plain.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Kind  string `json:"type,omitempty"`
}

// Table is a generic table projection: columns plus free-form rows keyed by
// column key.
type Table struct {
	ShowAddNew bool             `json:"show-add-new,omitempty"`
	Columns    []Column         `json:"columns"`
	Rows       []map[string]any `json:"rows"`
}
