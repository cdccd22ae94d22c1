package storage

import (
	"context"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// FieldService defines the field definition operations the facade composes.
type FieldService interface {
	Get(ctx context.Context, name string) (domfield.Field, error)
	List(ctx context.Context) ([]domfield.Field, error)
	Store(ctx context.Context, name string, f domfield.Field) error
	Delete(ctx context.Context, name string) (domfield.Field, error)
	MoveUp(ctx context.Context, name string) error
	MoveDown(ctx context.Context, name string) error
	SetPositions(ctx context.Context, names []string) error
	FieldInputs(ctx context.Context, typ, name string) ([]input.Input, error)
	TypeInputs() []input.Input
	FieldTable(ctx context.Context) (input.Table, error)
}

// ValueService defines the value record operations the facade composes.
type ValueService interface {
	Get(ctx context.Context, name string) (domvalue.Value, error)
	List(ctx context.Context, filter domvalue.Filter) ([]domvalue.Value, error)
	Store(ctx context.Context, name string, values []domvalue.NamedValue, keepOthers bool) error
	Delete(ctx context.Context, name string) error
	DeleteFieldValues(ctx context.Context, fieldID string) error
	AsText(ctx context.Context, name string) ([]domvalue.TextValue, error)
	AsFormat(ctx context.Context, name string) ([]domvalue.FormatValue, error)
	ValueInputs(ctx context.Context, name string) ([]input.Input, error)
	NewValueInputs() []input.Input
	FilterInputs(ctx context.Context) ([]input.Input, error)
	ValueTable(ctx context.Context, filter domvalue.Filter) (input.Table, error)
}
