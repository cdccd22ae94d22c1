// Package field implements the field definition service: CRUD, ordering and
// editor-schema projections over the definition repository, with all
// type-specific behavior delegated to the registered field type variants.
package field

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
)

// Service handles field definition operations.
type Service struct {
	repo  Repository
	types TypeRegistry
}

// New creates a field definition service.
func New(repo Repository, types TypeRegistry) *Service {
	return &Service{repo: repo, types: types}
}

// Get retrieves a definition by name, with type-specific attributes exposed
// through the variant's get-side mapping.
func (s *Service) Get(ctx context.Context, name string) (domfield.Field, error) {
	if !domfield.ValidName(name) {
		return domfield.Field{}, fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}

	f, err := s.repo.Get(ctx, name)
	if err != nil {
		return domfield.Field{}, fmt.Errorf("get field: %w", err)
	}

	return s.mapGet(f), nil
}

// List returns all definitions ordered by position ascending.
func (s *Service) List(ctx context.Context) ([]domfield.Field, error) {
	fields, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	for i, f := range fields {
		fields[i] = s.mapGet(f)
	}
	return fields, nil
}

// mapGet routes the stored attributes through the variant's get-side mapping.
// Attributes of a definition whose type is no longer registered are dropped
// rather than exposed raw.
func (s *Service) mapGet(f domfield.Field) domfield.Field {
	ft, ok := s.types.Resolve(f.Type)
	if !ok {
		f.Attrs = nil
		return f
	}
	f.Attrs = ft.MapGetField(f)
	return f
}

// Store upserts the definition stored under name. A definition carrying a
// different name is a rename; the new name must be free. Identity and
// position survive the update; the type never changes once stored.
func (s *Service) Store(ctx context.Context, name string, f domfield.Field) error {
	if !domfield.ValidName(name) || !domfield.ValidName(f.Name) {
		return fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}
	if f.Type == "" || f.Label == "" {
		return fmt.Errorf("missing type or label: %w", domain.ErrInvalidField)
	}

	if name != f.Name {
		taken, err := s.repo.Exists(ctx, f.Name)
		if err != nil {
			return fmt.Errorf("check rename target: %w", err)
		}
		if taken {
			return fmt.Errorf("rename to %q: %w", f.Name, domain.ErrAlreadyExists)
		}
	}

	previous, err := s.repo.Get(ctx, name)
	exists := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get previous field: %w", err)
	}
	if exists && previous.Type != f.Type {
		return fmt.Errorf("field %q is %q: %w", name, previous.Type, domain.ErrTypeImmutable)
	}

	ft, ok := s.types.Resolve(f.Type)
	if !ok {
		return fmt.Errorf("%q: %w", f.Type, domain.ErrUnknownFieldType)
	}
	if !ft.ValidateField(f) {
		return fmt.Errorf("field %q attributes: %w", f.Name, domain.ErrInvalidField)
	}

	if exists {
		f.ID = previous.ID
		f.Position = previous.Position
	} else {
		f.ID = uuid.NewString()
		position, err := s.nextPosition(ctx)
		if err != nil {
			return err
		}
		f.Position = position
	}
	f.Attrs = ft.MapStoreField(f)

	if err := s.repo.Save(ctx, f); err != nil {
		return fmt.Errorf("save field: %w", err)
	}
	if exists && name != f.Name {
		if err := s.repo.Delete(ctx, name); err != nil {
			return fmt.Errorf("drop renamed field %q: %w", name, err)
		}
	}
	return nil
}

// Delete removes a definition and re-densifies the remaining positions. The
// removed definition is returned so the caller can cascade value cleanup by
// its id.
func (s *Service) Delete(ctx context.Context, name string) (domfield.Field, error) {
	if !domfield.ValidName(name) {
		return domfield.Field{}, fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}

	f, err := s.repo.Get(ctx, name)
	if err != nil {
		return domfield.Field{}, fmt.Errorf("get field: %w", err)
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return domfield.Field{}, fmt.Errorf("delete field: %w", err)
	}
	if err := s.reposition(ctx); err != nil {
		return domfield.Field{}, err
	}
	return f, nil
}

// MoveUp relocates a definition one slot towards the front. Moving the first
// definition up is a successful no-op.
func (s *Service) MoveUp(ctx context.Context, name string) error {
	return s.move(ctx, name, -(domfield.PositionStep + domfield.PositionMove))
}

// MoveDown relocates a definition one slot towards the back. Moving the last
// definition down is a successful no-op.
func (s *Service) MoveDown(ctx context.Context, name string) error {
	return s.move(ctx, name, domfield.PositionStep+domfield.PositionMove)
}

// move shifts by a step and a half, which lands the definition strictly
// between its new neighbors, then re-densifies.
func (s *Service) move(ctx context.Context, name string, delta int) error {
	if !domfield.ValidName(name) {
		return fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}

	f, err := s.repo.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("get field: %w", err)
	}

	f.Position += delta
	if err := s.repo.Save(ctx, f); err != nil {
		return fmt.Errorf("save field: %w", err)
	}
	return s.reposition(ctx)
}

// SetPositions reorders all definitions at once. The given names must be
// exactly the stored field set; partial reorders are rejected.
func (s *Service) SetPositions(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("empty name list: %w", domain.ErrInvalidName)
	}
	for _, name := range names {
		if !domfield.ValidName(name) {
			return fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
		}
	}

	fields, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}

	byName := make(map[string]domfield.Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	if len(names) != len(fields) {
		return fmt.Errorf("name set mismatch: %w", domain.ErrInvalidField)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := byName[name]; !ok {
			return fmt.Errorf("unknown field %q: %w", name, domain.ErrInvalidField)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate field %q: %w", name, domain.ErrInvalidField)
		}
		seen[name] = struct{}{}
	}

	position := domfield.PositionStart
	for _, name := range names {
		f := byName[name]
		position += domfield.PositionStep
		if position == f.Position {
			continue
		}
		f.Position = position
		if err := s.repo.Save(ctx, f); err != nil {
			return fmt.Errorf("save field: %w", err)
		}
	}
	return nil
}

// FieldInputs produces the definition editor schema. Exactly one of typ and
// name selects the variant: typ for a fresh definition, name for editing a
// stored one.
func (s *Service) FieldInputs(ctx context.Context, typ, name string) ([]input.Input, error) {
	if (typ == "") == (name == "") {
		return nil, fmt.Errorf("exactly one of type and name: %w", domain.ErrInvalidField)
	}

	var f *domfield.Field
	if name != "" {
		got, err := s.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		f = &got
		typ = got.Type
	}

	ft, ok := s.types.Resolve(typ)
	if !ok {
		return nil, fmt.Errorf("%q: %w", typ, domain.ErrUnknownFieldType)
	}

	var fName, fLabel, fSubtitle string
	var fRequired bool
	if f != nil {
		fName, fLabel, fSubtitle, fRequired = f.Name, f.Label, f.Subtitle, f.Required
	}

	inputs := []input.Input{
		{Type: input.TypeHidden, Name: "type", Required: true, Value: ft.Type()},
		{Type: input.TypeText, Label: "Type", ReadOnly: true, Value: ft.TypeLabel()},
		{
			Type:     input.TypeText,
			Name:     "name",
			Label:    "Name",
			Subtitle: "Only letters, digits, dashes, underscores or dots",
			Pattern:  domfield.NamePattern.String(),
			Required: true,
			Value:    fName,
		},
		{Type: input.TypeText, Name: "label", Label: "Label", Required: true, Value: fLabel},
		{Type: input.TypeText, Name: "subtitle", Label: "Subtitle", Value: fSubtitle},
		{Type: input.TypeCheckbox, Name: "required", Label: "Required", Value: fRequired},
	}
	return append(inputs, ft.FieldInputs(f)...), nil
}

// TypeInputs produces the type selection schema for creating a definition,
// options sorted by type label.
func (s *Service) TypeInputs() []input.Input {
	variants := s.types.List()
	options := make([]input.Option, 0, len(variants))
	for _, ft := range variants {
		options = append(options, input.Option{Label: ft.TypeLabel(), Value: ft.Type()})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })

	return []input.Input{{
		Type:     input.TypeSelect,
		Name:     "type",
		Label:    "Type",
		Subtitle: "Can not be changed anymore",
		Required: true,
		Options:  options,
	}}
}

// FieldTable produces the field overview table. Variant-specific columns are
// folded into a single "Additional" column, empty values dropped.
func (s *Service) FieldTable(ctx context.Context) (input.Table, error) {
	fields, err := s.List(ctx)
	if err != nil {
		return input.Table{}, err
	}

	rows := make([]map[string]any, 0, len(fields))
	for _, f := range fields {
		typeLabel := f.Type
		var additional []string
		if ft, ok := s.types.Resolve(f.Type); ok {
			typeLabel = ft.TypeLabel()
			for _, col := range ft.FieldTableColumns(f) {
				if col.Value == "" {
					continue
				}
				additional = append(additional, fmt.Sprintf("%s: %s", col.Label, col.Value))
			}
		}
		rows = append(rows, map[string]any{
			"type":       typeLabel,
			"name":       f.Name,
			"label":      f.Label,
			"additional": strings.Join(additional, "\n"),
		})
	}

	return input.Table{
		ShowAddNew: true,
		Columns: []input.Column{
			{Key: "type", Label: "Type"},
			{Key: "name", Label: "Name"},
			{Key: "label", Label: "Label"},
			{Key: "additional", Label: "Additional"},
		},
		Rows: rows,
	}, nil
}

func (s *Service) nextPosition(ctx context.Context) (int, error) {
	fields, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list fields: %w", err)
	}

	max := domfield.PositionStart
	for _, f := range fields {
		if f.Position > max {
			max = f.Position
		}
	}
	return max + domfield.PositionStep, nil
}

// reposition re-densifies positions to consecutive step multiples, skipping
// writes for definitions already in place. Converges in one pass and is safe
// to re-run.
func (s *Service) reposition(ctx context.Context) error {
	fields, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list fields: %w", err)
	}

	position := domfield.PositionStart
	for _, f := range fields {
		position += domfield.PositionStep
		if position == f.Position {
			continue
		}
		f.Position = position
		if err := s.repo.Save(ctx, f); err != nil {
			return fmt.Errorf("save field: %w", err)
		}
	}
	return nil
}
