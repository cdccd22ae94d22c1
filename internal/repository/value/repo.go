// Package value persists value records as Redis hashes, one hash per record
// keyed by record name. Per-field rows travel as a JSON document inside the
// hash so a record is always written and read as a unit.
package value

import (
	"context"
	"fmt"
	"sort"

	"github.com/fluxkit-io/fieldstore/internal/db"
	"github.com/fluxkit-io/fieldstore/internal/domain"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// store is the consumer interface for value records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/value.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a value record repository.
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

// Get retrieves a record by name.
func (r *Repo) Get(ctx context.Context, name string) (domvalue.Record, error) {
	m, err := r.store.HGetAll(ctx, r.valueKey(name))
	if err != nil {
		return domvalue.Record{}, fmt.Errorf("hgetall value %s: %w", name, err)
	}
	if len(m) == 0 {
		return domvalue.Record{}, domain.ErrNotFound
	}
	return recordFromHash(m)
}

// Exists reports whether a record with the given name is stored.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	exists, err := r.store.Exists(ctx, r.valueKey(name))
	if err != nil {
		return false, fmt.Errorf("check exists value %s: %w", name, err)
	}
	return exists, nil
}

// List returns all records sorted by name.
func (r *Repo) List(ctx context.Context) ([]domvalue.Record, error) {
	keys, err := r.store.Scan(ctx, r.valueKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan values: %w", err)
	}
	if len(keys) == 0 {
		return []domvalue.Record{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi values: %w", err)
	}

	records := make([]domvalue.Record, 0, len(results))
	for i, m := range results {
		if len(m) == 0 {
			continue
		}
		rec, err := recordFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse value %s: %w", keys[i], err)
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

// Save upserts a record under its name.
func (r *Repo) Save(ctx context.Context, rec domvalue.Record) error {
	hashData, err := recordToHash(rec)
	if err != nil {
		return err
	}
	if err := r.store.HSet(ctx, r.valueKey(rec.Name), hashData); err != nil {
		return fmt.Errorf("hset value %s: %w", rec.Name, err)
	}
	return nil
}

// Delete removes a record by name.
func (r *Repo) Delete(ctx context.Context, name string) error {
	exists, err := r.store.Exists(ctx, r.valueKey(name))
	if err != nil {
		return fmt.Errorf("check exists value %s: %w", name, err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	if err := r.store.Del(ctx, r.valueKey(name)); err != nil {
		return fmt.Errorf("del value %s: %w", name, err)
	}
	return nil
}

// DeleteFieldRows strips every row referencing fieldID from all stored
// records and rewrites the affected ones in a single pipelined round-trip.
func (r *Repo) DeleteFieldRows(ctx context.Context, fieldID string) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	var items []db.HashSetItem
	for _, rec := range records {
		kept := make([]domvalue.FieldValue, 0, len(rec.Values))
		for _, fv := range rec.Values {
			if fv.FieldID != fieldID {
				kept = append(kept, fv)
			}
		}
		if len(kept) == len(rec.Values) {
			continue
		}
		rec.Values = kept
		hashData, err := recordToHash(rec)
		if err != nil {
			return err
		}
		items = append(items, db.HashSetItem{Key: r.valueKey(rec.Name), Fields: hashData})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("hset multi values: %w", err)
	}
	return nil
}

// Redis key pattern: {prefix}value:{name}

func (r *Repo) valueKey(name string) string {
	return fmt.Sprintf("%svalue:%s", r.prefix, name)
}
