package fieldtype

import (
	"fmt"

	"github.com/fluxkit-io/fieldstore/internal/domain"
)

// Registry holds the registered field type variants keyed by discriminator.
// It is populated at startup and read-only afterwards, so concurrent reads
// need no synchronization.
type Registry struct {
	types map[string]FieldType
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: map[string]FieldType{}}
}

// Register adds a variant under its discriminator. Discriminators are
// globally unique; a duplicate is rejected.
func (r *Registry) Register(ft FieldType) error {
	typ := ft.Type()
	if typ == "" {
		return fmt.Errorf("empty type discriminator: %w", domain.ErrInvalidField)
	}
	if _, ok := r.types[typ]; ok {
		return fmt.Errorf("%s: %w", typ, domain.ErrTypeRegistered)
	}
	r.types[typ] = ft
	r.order = append(r.order, typ)
	return nil
}

// Resolve looks up a variant. The second result is false for an unknown or
// removed type; callers fail closed for validation and pass values through
// for rendering.
func (r *Registry) Resolve(typ string) (FieldType, bool) {
	ft, ok := r.types[typ]
	return ft, ok
}

// List enumerates the registered variants in registration order.
func (r *Registry) List() []FieldType {
	out := make([]FieldType, len(r.order))
	for i, typ := range r.order {
		out[i] = r.types[typ]
	}
	return out
}
