package value

import (
	"context"
	"sort"
	"testing"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
	"github.com/fluxkit-io/fieldstore/internal/format"
)

// memRepo is an in-memory Repository for tests, keyed by record name.
type memRepo struct {
	records map[string]domvalue.Record
	fail    error
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string]domvalue.Record{}}
}

func (m *memRepo) Get(_ context.Context, name string) (domvalue.Record, error) {
	if m.fail != nil {
		return domvalue.Record{}, m.fail
	}
	rec, ok := m.records[name]
	if !ok {
		return domvalue.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) List(_ context.Context) ([]domvalue.Record, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]domvalue.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memRepo) Save(_ context.Context, rec domvalue.Record) error {
	if m.fail != nil {
		return m.fail
	}
	m.records[rec.Name] = rec
	return nil
}

func (m *memRepo) Delete(_ context.Context, name string) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.records[name]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, name)
	return nil
}

func (m *memRepo) DeleteFieldRows(_ context.Context, fieldID string) error {
	if m.fail != nil {
		return m.fail
	}
	for name, rec := range m.records {
		kept := make([]domvalue.FieldValue, 0, len(rec.Values))
		for _, fv := range rec.Values {
			if fv.FieldID != fieldID {
				kept = append(kept, fv)
			}
		}
		rec.Values = kept
		m.records[name] = rec
	}
	return nil
}

// memFields is a fixed FieldLister.
type memFields struct {
	fields []domfield.Field
}

func (m *memFields) List(context.Context) ([]domfield.Field, error) {
	return m.fields, nil
}

func newTestService(t *testing.T, fields ...domfield.Field) (*Service, *memRepo, *memFields) {
	t.Helper()
	repo := newMemRepo()
	fl := &memFields{fields: fields}
	svc := New(repo, fl, fieldtype.Default(), format.NewPlain())
	return svc, repo, fl
}

func ageField() domfield.Field {
	return domfield.Field{
		ID:       "f-age",
		Position: 10,
		Type:     fieldtype.TypeInteger,
		Name:     "age",
		Label:    "Age",
		Required: true,
		Attrs: map[string]any{
			domfield.AttrMinimalValue: float64(0),
			domfield.AttrMaximalValue: float64(120),
		},
	}
}

func colorField() domfield.Field {
	return domfield.Field{
		ID:       "f-color",
		Position: 20,
		Type:     fieldtype.TypeColor,
		Name:     "color",
		Label:    "Color",
	}
}

func tagsField() domfield.Field {
	return domfield.Field{
		ID:       "f-tags",
		Position: 30,
		Type:     fieldtype.TypeMultipleSelect,
		Name:     "tags",
		Label:    "Tags",
		Attrs: map[string]any{
			// Options in the shape the field service's get mapping delivers
			// them, not the typed form.
			domfield.AttrOptions: []map[string]any{
				{"value": "go", "label": "Go"},
				{"value": "js", "label": "JavaScript"},
			},
		},
	}
}

func nv(name string, v any) domvalue.NamedValue {
	return domvalue.NamedValue{Name: name, Value: v}
}
