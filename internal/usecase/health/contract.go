package health

import (
	"context"

	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// TypeLister reports the registered field type variants.
type TypeLister interface {
	List() []fieldtype.FieldType
}
