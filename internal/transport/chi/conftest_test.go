package chi

import (
	"context"
	"net/http"
	"sort"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
	"github.com/fluxkit-io/fieldstore/internal/format"
	fielduc "github.com/fluxkit-io/fieldstore/internal/usecase/field"
	healthuc "github.com/fluxkit-io/fieldstore/internal/usecase/health"
	storageuc "github.com/fluxkit-io/fieldstore/internal/usecase/storage"
	valueuc "github.com/fluxkit-io/fieldstore/internal/usecase/value"
)

// memFieldRepo is an in-memory field definition repository keyed by name.
type memFieldRepo struct {
	fields map[string]domfield.Field
}

func newMemFieldRepo() *memFieldRepo {
	return &memFieldRepo{fields: map[string]domfield.Field{}}
}

func (m *memFieldRepo) Get(_ context.Context, name string) (domfield.Field, error) {
	f, ok := m.fields[name]
	if !ok {
		return domfield.Field{}, domain.ErrNotFound
	}
	return f, nil
}

func (m *memFieldRepo) Exists(_ context.Context, name string) (bool, error) {
	_, ok := m.fields[name]
	return ok, nil
}

func (m *memFieldRepo) List(_ context.Context) ([]domfield.Field, error) {
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

func (m *memFieldRepo) Save(_ context.Context, f domfield.Field) error {
	m.fields[f.Name] = f
	return nil
}

func (m *memFieldRepo) Delete(_ context.Context, name string) error {
	if _, ok := m.fields[name]; !ok {
		return domain.ErrNotFound
	}
	delete(m.fields, name)
	return nil
}

// memValueRepo is an in-memory value record repository keyed by record name.
type memValueRepo struct {
	records map[string]domvalue.Record
}

func newMemValueRepo() *memValueRepo {
	return &memValueRepo{records: map[string]domvalue.Record{}}
}

func (m *memValueRepo) Get(_ context.Context, name string) (domvalue.Record, error) {
	rec, ok := m.records[name]
	if !ok {
		return domvalue.Record{}, domain.ErrNotFound
	}
	return rec, nil
}

func (m *memValueRepo) List(_ context.Context) ([]domvalue.Record, error) {
	out := make([]domvalue.Record, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memValueRepo) Save(_ context.Context, rec domvalue.Record) error {
	m.records[rec.Name] = rec
	return nil
}

func (m *memValueRepo) Delete(_ context.Context, name string) error {
	if _, ok := m.records[name]; !ok {
		return domain.ErrNotFound
	}
	delete(m.records, name)
	return nil
}

func (m *memValueRepo) DeleteFieldRows(_ context.Context, fieldID string) error {
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

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// newTestHandler wires the full stack over in-memory repositories.
func newTestHandler(t *testing.T) (http.Handler, *memFieldRepo, *memValueRepo) {
	t.Helper()

	fieldRepo := newMemFieldRepo()
	valueRepo := newMemValueRepo()
	types := fieldtype.Default()

	fieldSvc := fielduc.New(fieldRepo, types)
	valueSvc := valueuc.New(valueRepo, fieldSvc, types, format.NewPlain())
	facade := storageuc.New(fieldSvc, valueSvc)
	health := healthuc.New(okPinger{}, types)

	server := NewServer(facade, health, zap.NewNop())
	r := chirouter.NewRouter()
	server.Register(r)
	return r, fieldRepo, valueRepo
}
