package chi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// fieldView is the external form of a field definition. Internal id and
// position never leave the process.
type fieldView struct {
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Label      string         `json:"label"`
	Subtitle   string         `json:"subtitle,omitempty"`
	Required   bool           `json:"required"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

func fieldToView(f domfield.Field) fieldView {
	return fieldView{
		Type:       f.Type,
		Name:       f.Name,
		Label:      f.Label,
		Subtitle:   f.Subtitle,
		Required:   f.Required,
		Attributes: f.Attrs,
	}
}

func fieldsToView(fields []domfield.Field) []fieldView {
	views := make([]fieldView, len(fields))
	for i, f := range fields {
		views[i] = fieldToView(f)
	}
	return views
}

// fieldRequest is the upsert body of PUT /api/fields/{name}. The name comes
// from the path.
type fieldRequest struct {
	Type       string         `json:"type"`
	Label      string         `json:"label"`
	Subtitle   string         `json:"subtitle"`
	Required   bool           `json:"required"`
	Attributes map[string]any `json:"attributes"`
}

func (r fieldRequest) toDomain(name string) domfield.Field {
	return domfield.Field{
		Type:     r.Type,
		Name:     name,
		Label:    r.Label,
		Subtitle: r.Subtitle,
		Required: r.Required,
		Attrs:    r.Attributes,
	}
}

// positionsRequest is the body of POST /api/fields/positions.
type positionsRequest struct {
	Names []string `json:"names"`
}

// fieldParamPrefix marks per-field query parameters of the value listing
// endpoints: field-<name> for a direct criterion, field-<name>.<attr> for a
// relational one.
const fieldParamPrefix = "field-"

// filterFromQuery builds a value filter from the listing query parameters.
// Raw criterion values stay strings; the field type's filter mapping
// normalizes them. A malformed parameter fails the whole filter.
func filterFromQuery(query url.Values) (domvalue.Filter, error) {
	var filter domvalue.Filter
	for key, vals := range query {
		if len(vals) == 0 {
			continue
		}
		val := vals[0]
		switch {
		case key == "name":
			filter.Name = val
		case key == "has-value":
			switch val {
			case "true", "false":
				hasValue := val == "true"
				filter.HasValue = &hasValue
			default:
				return domvalue.Filter{}, fmt.Errorf("has-value %q: %w", val, domain.ErrInvalidFilter)
			}
		case strings.HasPrefix(key, fieldParamPrefix):
			// Field names may contain dots, so only the known relational
			// suffixes split off an attribute.
			name, attribute := strings.TrimPrefix(key, fieldParamPrefix), ""
			if i := strings.LastIndex(name, "."); i >= 0 {
				switch suffix := name[i+1:]; suffix {
				case fieldtype.FilterFrom, fieldtype.FilterTo, fieldtype.FilterContains:
					name, attribute = name[:i], suffix
				}
			}
			filter.Fields = append(filter.Fields, domvalue.FieldFilter{
				Field:     name,
				Attribute: attribute,
				Value:     val,
			})
		}
	}
	return filter, nil
}
