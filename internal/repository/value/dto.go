package value

import (
	"encoding/json"
	"fmt"

	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// valueRow is the JSON-serializable representation of one (field, value) row
// for HSET. Value holds the canonical persisted form; its JSON shape is
// whatever the field type's store mapping produced.
type valueRow struct {
	FieldID string `json:"field_id"`
	Value   any    `json:"value"`
}

// recordToHash converts a value record to a map for HSET.
func recordToHash(rec domvalue.Record) (map[string]string, error) {
	rows := make([]valueRow, len(rec.Values))
	for i, fv := range rec.Values {
		rows[i] = valueRow{FieldID: fv.FieldID, Value: fv.Value}
	}
	valuesJSON, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal values: %w", err)
	}
	return map[string]string{
		"id":          rec.ID,
		"name":        rec.Name,
		"values_json": string(valuesJSON),
	}, nil
}

// recordFromHash hydrates a value record from an HGETALL result map.
func recordFromHash(m map[string]string) (domvalue.Record, error) {
	var rows []valueRow
	if valuesJSON := m["values_json"]; valuesJSON != "" {
		if err := json.Unmarshal([]byte(valuesJSON), &rows); err != nil {
			return domvalue.Record{}, fmt.Errorf("unmarshal values: %w", err)
		}
	}

	values := make([]domvalue.FieldValue, len(rows))
	for i, row := range rows {
		values[i] = domvalue.FieldValue{FieldID: row.FieldID, Value: row.Value}
	}

	return domvalue.Record{
		ID:     m["id"],
		Name:   m["name"],
		Values: values,
	}, nil
}
