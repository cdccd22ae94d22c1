// Package storage exposes the unified field and value API and owns the
// cross-service operations, most notably the field delete cascade.
package storage

import (
	"context"
	"fmt"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// Facade is the single entry point consumers wire against.
type Facade struct {
	fields FieldService
	values ValueService
}

// New creates the storage facade.
func New(fields FieldService, values ValueService) *Facade {
	return &Facade{fields: fields, values: values}
}

// --- field definitions ---

// Field returns one field definition by name.
func (f *Facade) Field(ctx context.Context, name string) (domfield.Field, error) {
	return f.fields.Get(ctx, name)
}

// Fields returns all field definitions in display order.
func (f *Facade) Fields(ctx context.Context) ([]domfield.Field, error) {
	return f.fields.List(ctx)
}

// StoreField creates or updates the field definition under name.
func (f *Facade) StoreField(ctx context.Context, name string, def domfield.Field) error {
	return f.fields.Store(ctx, name, def)
}

// DeleteField removes a field definition together with every stored value row
// of that field. The definition goes first; a record rewrite failure leaves
// orphaned rows, which reads already ignore.
func (f *Facade) DeleteField(ctx context.Context, name string) error {
	def, err := f.fields.Delete(ctx, name)
	if err != nil {
		return err
	}
	if err := f.values.DeleteFieldValues(ctx, def.ID); err != nil {
		return fmt.Errorf("cascade field %q: %w", name, err)
	}
	return nil
}

// MoveFieldUp swaps the field with its predecessor in display order.
func (f *Facade) MoveFieldUp(ctx context.Context, name string) error {
	return f.fields.MoveUp(ctx, name)
}

// MoveFieldDown swaps the field with its successor in display order.
func (f *Facade) MoveFieldDown(ctx context.Context, name string) error {
	return f.fields.MoveDown(ctx, name)
}

// SetFieldPositions reorders all fields at once. names must list every stored
// field exactly once.
func (f *Facade) SetFieldPositions(ctx context.Context, names []string) error {
	return f.fields.SetPositions(ctx, names)
}

// FieldInputs produces the edit widgets for a new field of the given type or
// for the stored field under name, exactly one of which must be set.
func (f *Facade) FieldInputs(ctx context.Context, typ, name string) ([]input.Input, error) {
	return f.fields.FieldInputs(ctx, typ, name)
}

// FieldTypeInputs produces the type selector for creating a field.
func (f *Facade) FieldTypeInputs() []input.Input {
	return f.fields.TypeInputs()
}

// FieldTable produces the field definition overview table.
func (f *Facade) FieldTable(ctx context.Context) (input.Table, error) {
	return f.fields.FieldTable(ctx)
}

// --- value records ---

// Value returns the external view of one record.
func (f *Facade) Value(ctx context.Context, name string) (domvalue.Value, error) {
	return f.values.Get(ctx, name)
}

// Values returns the external view of all records matching the filter.
func (f *Facade) Values(ctx context.Context, filter domvalue.Filter) ([]domvalue.Value, error) {
	return f.values.List(ctx, filter)
}

// StoreValue validates and persists a record. keepOthers seeds unmentioned
// fields from the previously stored record.
func (f *Facade) StoreValue(ctx context.Context, name string, values []domvalue.NamedValue, keepOthers bool) error {
	return f.values.Store(ctx, name, values, keepOthers)
}

// DeleteValue removes a record by name.
func (f *Facade) DeleteValue(ctx context.Context, name string) error {
	return f.values.Delete(ctx, name)
}

// ValueAsText renders a record's text projection.
func (f *Facade) ValueAsText(ctx context.Context, name string) ([]domvalue.TextValue, error) {
	return f.values.AsText(ctx, name)
}

// ValueAsFormat renders a record's structured format projection.
func (f *Facade) ValueAsFormat(ctx context.Context, name string) ([]domvalue.FormatValue, error) {
	return f.values.AsFormat(ctx, name)
}

// ValueInputs produces the edit widgets for the record under name.
func (f *Facade) ValueInputs(ctx context.Context, name string) ([]input.Input, error) {
	return f.values.ValueInputs(ctx, name)
}

// NewValueInputs produces the inputs for creating a record.
func (f *Facade) NewValueInputs() []input.Input {
	return f.values.NewValueInputs()
}

// ValueFilterInputs produces the record filter widgets.
func (f *Facade) ValueFilterInputs(ctx context.Context) ([]input.Input, error) {
	return f.values.FilterInputs(ctx)
}

// ValueTable produces the record overview table for the given filter.
func (f *Facade) ValueTable(ctx context.Context, filter domvalue.Filter) (input.Table, error) {
	return f.values.ValueTable(ctx, filter)
}
