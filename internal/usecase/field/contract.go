package field

import (
	"context"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// Repository defines the storage contract for field definitions.
type Repository interface {
	Get(ctx context.Context, name string) (domfield.Field, error)
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domfield.Field, error)
	Save(ctx context.Context, f domfield.Field) error
	Delete(ctx context.Context, name string) error
}

// TypeRegistry resolves field type variants.
type TypeRegistry interface {
	Resolve(typ string) (fieldtype.FieldType, bool)
	List() []fieldtype.FieldType
}
