package field

import (
	"context"
	"sort"
	"testing"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// memRepo is an in-memory Repository for tests, keyed by name like the real
// hash-backed one.
type memRepo struct {
	fields map[string]domfield.Field
	// fail, when set, is returned by every operation.
	fail error
}

func newMemRepo() *memRepo {
	return &memRepo{fields: map[string]domfield.Field{}}
}

func (m *memRepo) Get(_ context.Context, name string) (domfield.Field, error) {
	if m.fail != nil {
		return domfield.Field{}, m.fail
	}
	f, ok := m.fields[name]
	if !ok {
		return domfield.Field{}, domain.ErrNotFound
	}
	return f, nil
}

func (m *memRepo) Exists(_ context.Context, name string) (bool, error) {
	if m.fail != nil {
		return false, m.fail
	}
	_, ok := m.fields[name]
	return ok, nil
}

func (m *memRepo) List(_ context.Context) ([]domfield.Field, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]domfield.Field, 0, len(m.fields))
	for _, f := range m.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memRepo) Save(_ context.Context, f domfield.Field) error {
	if m.fail != nil {
		return m.fail
	}
	m.fields[f.Name] = f
	return nil
}

func (m *memRepo) Delete(_ context.Context, name string) error {
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.fields[name]; !ok {
		return domain.ErrNotFound
	}
	delete(m.fields, name)
	return nil
}

func newTestService(t *testing.T) (*Service, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	return New(repo, fieldtype.Default()), repo
}

func ageField() domfield.Field {
	return domfield.Field{
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

func textField(name string) domfield.Field {
	return domfield.Field{Type: fieldtype.TypeText, Name: name, Label: name}
}

// names lists the stored fields in position order.
func (m *memRepo) names() []string {
	fields, _ := m.List(context.Background())
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}
