package value

import (
	"context"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// Repository defines the storage contract for value records.
type Repository interface {
	Get(ctx context.Context, name string) (domvalue.Record, error)
	List(ctx context.Context) ([]domvalue.Record, error)
	Save(ctx context.Context, rec domvalue.Record) error
	Delete(ctx context.Context, name string) error
	DeleteFieldRows(ctx context.Context, fieldID string) error
}

// FieldLister provides the live field definition list, ordered by position.
// Every value operation re-reads it; schema changes take effect immediately.
type FieldLister interface {
	List(ctx context.Context) ([]domfield.Field, error)
}

// TypeRegistry resolves field type variants.
type TypeRegistry interface {
	Resolve(typ string) (fieldtype.FieldType, bool)
}

// Formatter is the display-formatting collaborator for the text and format
// projections.
type Formatter interface {
	Text(v any) string
	Value(kind string, v any) any
}
