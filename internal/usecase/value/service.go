// Package value implements the value reconciliation service: every read,
// write, filter and projection aligns a record's raw rows against the live
// field definition list and delegates per-type behavior to the registered
// variants.
package value

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
	"github.com/fluxkit-io/fieldstore/internal/fieldtype"
)

// Service handles value record operations.
type Service struct {
	repo      Repository
	fields    FieldLister
	types     TypeRegistry
	formatter Formatter
}

// New creates a value reconciliation service.
func New(repo Repository, fields FieldLister, types TypeRegistry, formatter Formatter) *Service {
	return &Service{repo: repo, fields: fields, types: types, formatter: formatter}
}

// Store validates and persists a record. values maps field names to raw
// values; keepOthers seeds unmentioned fields from the previously stored
// record instead of resetting them. Every live field is validated before any
// mutation; one failing field aborts the whole write.
func (s *Service) Store(ctx context.Context, name string, values []domvalue.NamedValue, keepOthers bool) error {
	if !domfield.ValidName(name) {
		return fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}
	if len(values) == 0 {
		return fmt.Errorf("no values submitted: %w", domain.ErrInvalidValue)
	}
	for _, nv := range values {
		if nv.Name == "" {
			return fmt.Errorf("unnamed value: %w", domain.ErrInvalidValue)
		}
	}

	fields, err := s.fields.List(ctx)
	if err != nil {
		return err
	}

	previous, err := s.repo.Get(ctx, name)
	exists := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get previous value: %w", err)
	}

	// Raw values per field id: carried-over rows first, submitted ones on top.
	raw := map[string]any{}
	if keepOthers && exists {
		for _, fv := range previous.Values {
			raw[fv.FieldID] = fv.Value
		}
	}
	for _, nv := range values {
		f, ok := findField(fields, nv.Name)
		if !ok {
			return fmt.Errorf("unknown field %q: %w", nv.Name, domain.ErrInvalidValue)
		}
		raw[f.ID] = nv.Value
	}

	rows := make([]domvalue.FieldValue, 0, len(fields))
	for _, f := range fields {
		ft, ok := s.types.Resolve(f.Type)
		if !ok {
			return fmt.Errorf("field %q type %q: %w", f.Name, f.Type, domain.ErrUnknownFieldType)
		}
		v := raw[f.ID]
		if !ft.ValidateValue(f, v) {
			return fmt.Errorf("field %q: %w", f.Name, domain.ErrInvalidValue)
		}
		rows = append(rows, domvalue.FieldValue{FieldID: f.ID, Value: ft.MapStoreValue(f, v)})
	}

	rec := domvalue.Record{ID: uuid.NewString(), Name: name, Values: rows}
	if exists {
		// Record identity survives rewrites.
		rec.ID = previous.ID
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("save value: %w", err)
	}
	return nil
}

// Get returns the external view of a record: one entry per live field, mapped
// through the variant's get-side mapping. Rows of deleted fields never
// surface.
func (s *Service) Get(ctx context.Context, name string) (domvalue.Value, error) {
	if !domfield.ValidName(name) {
		return domvalue.Value{}, fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}

	rec, err := s.repo.Get(ctx, name)
	if err != nil {
		return domvalue.Value{}, fmt.Errorf("get value: %w", err)
	}

	fields, err := s.fields.List(ctx)
	if err != nil {
		return domvalue.Value{}, err
	}
	return s.external(rec, fields), nil
}

// List returns the external view of all records matching the filter, ordered
// by name. A malformed filter aborts the query rather than matching nothing.
func (s *Service) List(ctx context.Context, filter domvalue.Filter) ([]domvalue.Value, error) {
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}

	criteria, err := s.parseFilter(fields, filter)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list values: %w", err)
	}

	values := make([]domvalue.Value, 0, len(records))
	for _, rec := range records {
		if filter.Name != "" && rec.Name != filter.Name {
			continue
		}
		if filter.HasValue != nil && !*filter.HasValue {
			continue
		}
		if !matchRecord(rec, criteria) {
			continue
		}
		values = append(values, s.external(rec, fields))
	}

	// has-value=false with a name selects a name with no stored record and
	// yields a placeholder with empty values.
	if filter.HasValue != nil && !*filter.HasValue && filter.Name != "" {
		stored := false
		for _, rec := range records {
			if rec.Name == filter.Name {
				stored = true
				break
			}
		}
		if !stored {
			values = append(values, s.external(domvalue.Record{Name: filter.Name}, fields))
		}
	}

	return values, nil
}

// Delete removes a record by name.
func (s *Service) Delete(ctx context.Context, name string) error {
	if !domfield.ValidName(name) {
		return fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete value: %w", err)
	}
	return nil
}

// DeleteFieldValues removes every stored row of a field definition. Called by
// the storage facade as part of the field delete cascade.
func (s *Service) DeleteFieldValues(ctx context.Context, fieldID string) error {
	if fieldID == "" {
		return fmt.Errorf("empty field id: %w", domain.ErrInvalidField)
	}
	if err := s.repo.DeleteFieldRows(ctx, fieldID); err != nil {
		return fmt.Errorf("delete field rows: %w", err)
	}
	return nil
}

// AsText renders a record's text projection, one entry per live field,
// through the formatting collaborator.
func (s *Service) AsText(ctx context.Context, name string) ([]domvalue.TextValue, error) {
	rec, fields, err := s.recordAndFields(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]domvalue.TextValue, 0, len(fields))
	for _, f := range fields {
		v := rec.Lookup(f.ID)
		var text any = v
		if ft, ok := s.types.Resolve(f.Type); ok {
			text = ft.ValueAsText(f, ft.MapGetValue(f, v))
		}
		out = append(out, domvalue.TextValue{
			Name:  f.Name,
			Label: f.Label,
			Text:  s.formatter.Text(text),
		})
	}
	return out, nil
}

// AsFormat renders a record's structured format projection.
func (s *Service) AsFormat(ctx context.Context, name string) ([]domvalue.FormatValue, error) {
	rec, fields, err := s.recordAndFields(ctx, name)
	if err != nil {
		return nil, err
	}

	out := make([]domvalue.FormatValue, 0, len(fields))
	for _, f := range fields {
		v := rec.Lookup(f.ID)
		kind := ""
		var formatted any = v
		if ft, ok := s.types.Resolve(f.Type); ok {
			kind = ft.FormatKind(f)
			formatted = ft.ValueAsFormat(f, ft.MapGetValue(f, v))
		}
		out = append(out, domvalue.FormatValue{
			Name:  f.Name,
			Label: f.Label,
			Kind:  kind,
			Value: s.formatter.Value(kind, formatted),
		})
	}
	return out, nil
}

// ValueInputs produces the edit widgets for a record, bound to its current
// values. An empty name produces the widgets for a fresh record.
func (s *Service) ValueInputs(ctx context.Context, name string) ([]input.Input, error) {
	var rec domvalue.Record
	if name != "" {
		var err error
		rec, _, err = s.recordAndFields(ctx, name)
		if err != nil {
			return nil, err
		}
	}

	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}

	inputs := make([]input.Input, 0, len(fields))
	for _, f := range fields {
		ft, ok := s.types.Resolve(f.Type)
		if !ok {
			continue
		}
		in := ft.ValueInput(f, ft.MapGetValue(f, rec.Lookup(f.ID)))
		if in == nil {
			continue
		}
		in.Name = f.Name
		in.Label = f.Label
		in.Subtitle = f.Subtitle
		in.Required = f.Required
		inputs = append(inputs, *in)
	}
	return inputs, nil
}

// NewValueInputs produces the inputs for creating a record. The name is
// immutable after creation.
func (s *Service) NewValueInputs() []input.Input {
	return []input.Input{{
		Type:     input.TypeText,
		Name:     "name",
		Label:    "Name",
		Subtitle: "Only letters, digits, dashes, underscores or dots. Can not be changed anymore",
		Pattern:  domfield.NamePattern.String(),
		Required: true,
	}}
}

// FilterInputs produces the record filter widgets: name, has-value, plus the
// per-field direct and relational inputs.
func (s *Service) FilterInputs(ctx context.Context) ([]input.Input, error) {
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}

	inputs := []input.Input{
		{
			Type:     input.TypeText,
			Name:     "name",
			Label:    "Name",
			Subtitle: "Only letters, digits, dashes, underscores or dots",
			Pattern:  domfield.NamePattern.String(),
		},
		{
			Type:  input.TypeSelect,
			Name:  "has-value",
			Label: "Has value",
			Options: []input.Option{
				{Label: "No", Value: "false"},
				{Label: "Yes", Value: "true"},
			},
		},
	}

	for _, f := range fields {
		ft, ok := s.types.Resolve(f.Type)
		if !ok {
			continue
		}
		for _, in := range ft.FilterInputs(f) {
			if in.Name == "" {
				in.Name = fieldParam(f.Name)
				in.Label = f.Label
				in.Subtitle = f.Subtitle
			} else {
				in.Name = fieldParam(f.Name) + "." + in.Name
			}
			// Filter criteria are always optional.
			in.Required = false
			inputs = append(inputs, in)
		}
	}
	return inputs, nil
}

// ValueTable produces the record overview table for the given filter: one
// column per live field, one row per matching record, cells in format
// projection.
func (s *Service) ValueTable(ctx context.Context, filter domvalue.Filter) (input.Table, error) {
	fields, err := s.fields.List(ctx)
	if err != nil {
		return input.Table{}, err
	}

	columns := []input.Column{{Key: "name", Label: "Name"}}
	for _, f := range fields {
		kind := ""
		if ft, ok := s.types.Resolve(f.Type); ok {
			kind = ft.FormatKind(f)
		}
		columns = append(columns, input.Column{Key: fieldParam(f.Name), Label: f.Label, Kind: kind})
	}

	criteria, err := s.parseFilter(fields, filter)
	if err != nil {
		return input.Table{}, err
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return input.Table{}, fmt.Errorf("list values: %w", err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if filter.Name != "" && rec.Name != filter.Name {
			continue
		}
		if filter.HasValue != nil && !*filter.HasValue {
			continue
		}
		if !matchRecord(rec, criteria) {
			continue
		}
		row := map[string]any{"name": rec.Name, "has-value": true}
		for _, f := range fields {
			var cell any
			if ft, ok := s.types.Resolve(f.Type); ok {
				kind := ft.FormatKind(f)
				cell = s.formatter.Value(kind, ft.ValueAsFormat(f, ft.MapGetValue(f, rec.Lookup(f.ID))))
			}
			row[fieldParam(f.Name)] = cell
		}
		rows = append(rows, row)
	}

	return input.Table{ShowAddNew: true, Columns: columns, Rows: rows}, nil
}

// --- internals ---

// criterion is a validated, mapped per-field filter ready for matching.
type criterion struct {
	field     domfield.Field
	ft        fieldtype.FieldType
	attribute string
	value     any
}

// parseFilter maps and validates the per-field criteria. Any malformed
// criterion fails the whole filter.
func (s *Service) parseFilter(fields []domfield.Field, filter domvalue.Filter) ([]criterion, error) {
	if filter.Name != "" && !domfield.ValidName(filter.Name) {
		return nil, fmt.Errorf("name %q: %w", filter.Name, domain.ErrInvalidFilter)
	}

	criteria := make([]criterion, 0, len(filter.Fields))
	for _, ff := range filter.Fields {
		f, ok := findField(fields, ff.Field)
		if !ok {
			return nil, fmt.Errorf("unknown field %q: %w", ff.Field, domain.ErrInvalidFilter)
		}
		ft, ok := s.types.Resolve(f.Type)
		if !ok {
			return nil, fmt.Errorf("field %q type %q: %w", f.Name, f.Type, domain.ErrInvalidFilter)
		}
		mapped := ft.MapFilterValue(f, ff.Value, ff.Attribute)
		if !ft.ValidateFilterValue(f, mapped, ff.Attribute) {
			return nil, fmt.Errorf("field %q: %w", f.Name, domain.ErrInvalidFilter)
		}
		criteria = append(criteria, criterion{field: f, ft: ft, attribute: ff.Attribute, value: mapped})
	}
	return criteria, nil
}

func matchRecord(rec domvalue.Record, criteria []criterion) bool {
	for _, c := range criteria {
		if !c.ft.MatchFilterValue(c.field, rec.Lookup(c.field.ID), c.value, c.attribute) {
			return false
		}
	}
	return true
}

// external maps a stored record to its external view over the live fields.
func (s *Service) external(rec domvalue.Record, fields []domfield.Field) domvalue.Value {
	values := make([]domvalue.NamedValue, 0, len(fields))
	for _, f := range fields {
		v := rec.Lookup(f.ID)
		if ft, ok := s.types.Resolve(f.Type); ok {
			v = ft.MapGetValue(f, v)
		}
		values = append(values, domvalue.NamedValue{Name: f.Name, Value: v})
	}
	return domvalue.Value{Name: rec.Name, Values: values}
}

func (s *Service) recordAndFields(ctx context.Context, name string) (domvalue.Record, []domfield.Field, error) {
	if !domfield.ValidName(name) {
		return domvalue.Record{}, nil, fmt.Errorf("%q: %w", name, domain.ErrInvalidName)
	}
	rec, err := s.repo.Get(ctx, name)
	if err != nil {
		return domvalue.Record{}, nil, fmt.Errorf("get value: %w", err)
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return domvalue.Record{}, nil, err
	}
	return rec, fields, nil
}

func findField(fields []domfield.Field, name string) (domfield.Field, bool) {
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return domfield.Field{}, false
}

// fieldParam is the wire name of a per-field filter or table column.
func fieldParam(name string) string {
	return "field-" + name
}
