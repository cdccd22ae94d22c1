// Package format holds the display-formatting collaborator contract and the
// built-in plain implementation. The text projection of every value passes
// through it; the core stays free of presentation decisions.
package format

import (
	"fmt"
	"strconv"
)

// NoValueText is the rendering of a missing value in text projections.
const NoValueText = "-"

// Formatter renders projected values for display.
type Formatter interface {
	// Text renders a per-type text projection result as a display string.
	// nil and the empty string render as NoValueText.
	Text(v any) string
	// Value produces the structured representation for a format kind; the
	// plain implementation passes it through unchanged.
	Value(kind string, v any) any
}

// Plain is the built-in formatter.
type Plain struct{}

// NewPlain creates the built-in formatter.
func NewPlain() Plain { return Plain{} }

func (Plain) Text(v any) string {
	switch t := v.(type) {
	case nil:
		return NoValueText
	case string:
		if t == "" {
			return NoValueText
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func (Plain) Value(_ string, v any) any { return v }
