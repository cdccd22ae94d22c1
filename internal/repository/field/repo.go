// Package field persists field definitions as Redis hashes, one hash per
// definition keyed by name.
package field

import (
	"context"
	"fmt"
	"sort"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
)

// store is the consumer interface for field definitions (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/field.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a field definition repository.
func New(s store) *Repo {
	return &Repo{store: s, prefix: domain.KeyPrefix}
}

// WithPrefix overrides the key namespace prefix.
func (r *Repo) WithPrefix(prefix string) *Repo {
	if prefix != "" {
		r.prefix = prefix
	}
	return r
}

// Get retrieves a definition by name.
func (r *Repo) Get(ctx context.Context, name string) (domfield.Field, error) {
	m, err := r.store.HGetAll(ctx, r.fieldKey(name))
	if err != nil {
		return domfield.Field{}, fmt.Errorf("hgetall field %s: %w", name, err)
	}
	if len(m) == 0 {
		return domfield.Field{}, domain.ErrNotFound
	}
	return fieldFromHash(m)
}

// Exists reports whether a definition with the given name is stored.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := r.store.Exists(ctx, r.fieldKey(name))
	if err != nil {
		return false, fmt.Errorf("check exists field %s: %w", name, err)
	}
	return exists, nil
}

// List returns all definitions sorted by position.
func (r *Repo) List(ctx context.Context) ([]domfield.Field, error) {
	keys, err := r.store.Scan(ctx, r.fieldKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan fields: %w", err)
	}
	if len(keys) == 0 {
		return []domfield.Field{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi fields: %w", err)
	}

	fields := make([]domfield.Field, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			// Key expired between SCAN and HGETALL.
			continue
		}
		f, err := fieldFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse field %s: %w", keys[i], err)
		}
		fields = append(fields, f)
	}

	sort.Slice(fields, func(i, j int) bool {
		if fields[i].Position != fields[j].Position {
			return fields[i].Position < fields[j].Position
		}
		return fields[i].Name < fields[j].Name
	})

	return fields, nil
}

// Save upserts a definition under its name.
func (r *Repo) Save(ctx context.Context, f domfield.Field) error {
	hashData, err := fieldToHash(f)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.fieldKey(f.Name), hashData); err != nil {
		return fmt.Errorf("hset field %s: %w", f.Name, err)
	}
	return nil
}

// Delete removes a definition by name.
func (r *Repo) Delete(ctx context.Context, name string) error {
	exists, err := r.store.Exists(ctx, r.fieldKey(name))
	if err != nil {
		return fmt.Errorf("check exists field %s: %w", name, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, r.fieldKey(name)); err != nil {
		return fmt.Errorf("del field %s: %w", name, err)
	}
	return nil
}

// Redis key pattern: {prefix}field:{name}

func (r *Repo) fieldKey(name string) string {
	return fmt.Sprintf("%sfield:%s", r.prefix, name)
}
