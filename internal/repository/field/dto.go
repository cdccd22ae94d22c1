package field

import (
	"encoding/json"
	"fmt"
	"strconv"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
)

// fieldToHash converts a field definition to a map for HSET.
func fieldToHash(f domfield.Field) (map[string]string, error) {
	attrsJSON, err := json.Marshal(f.Attrs)
	if err != nil {
		return nil, fmt.Errorf("marshal attrs: %w", err)
	}
	return map[string]string{
		"id":         f.ID,
		"position":   strconv.Itoa(f.Position),
		"type":       f.Type,
		"name":       f.Name,
		"label":      f.Label,
		"subtitle":   f.Subtitle,
		"required":   strconv.FormatBool(f.Required),
		"attrs_json": string(attrsJSON),
	}, nil
}

// fieldFromHash hydrates a field definition from an HGETALL result map.
func fieldFromHash(m map[string]string) (domfield.Field, error) {
	position, err := strconv.Atoi(m["position"])
	if err != nil {
		return domfield.Field{}, fmt.Errorf("invalid position: %w", err)
	}

	var attrs map[string]any
	if attrsJSON := m["attrs_json"]; attrsJSON != "" {
		if err := json.Unmarshal([]byte(attrsJSON), &attrs); err != nil {
			return domfield.Field{}, fmt.Errorf("unmarshal attrs: %w", err)
		}
	}

	required, _ := strconv.ParseBool(m["required"])

	return domfield.Field{
		ID:       m["id"],
		Position: position,
		Type:     m["type"],
		Name:     m["name"],
		Label:    m["label"],
		Subtitle: m["subtitle"],
		Required: required,
		Attrs:    attrs,
	}, nil
}
