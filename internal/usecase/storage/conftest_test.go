package storage

import (
	"context"

	domfield "github.com/fluxkit-io/fieldstore/internal/domain/field"
	"github.com/fluxkit-io/fieldstore/internal/domain/input"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// mockFieldService implements FieldService with overridable functions.
type mockFieldService struct {
	getFunc          func(ctx context.Context, name string) (domfield.Field, error)
	listFunc         func(ctx context.Context) ([]domfield.Field, error)
	storeFunc        func(ctx context.Context, name string, f domfield.Field) error
	deleteFunc       func(ctx context.Context, name string) (domfield.Field, error)
	moveUpFunc       func(ctx context.Context, name string) error
	moveDownFunc     func(ctx context.Context, name string) error
	setPositionsFunc func(ctx context.Context, names []string) error
	fieldInputsFunc  func(ctx context.Context, typ, name string) ([]input.Input, error)
	typeInputsFunc   func() []input.Input
	fieldTableFunc   func(ctx context.Context) (input.Table, error)
}

func (m *mockFieldService) Get(ctx context.Context, name string) (domfield.Field, error) {
	return m.getFunc(ctx, name)
}

func (m *mockFieldService) List(ctx context.Context) ([]domfield.Field, error) {
	return m.listFunc(ctx)
}

func (m *mockFieldService) Store(ctx context.Context, name string, f domfield.Field) error {
	return m.storeFunc(ctx, name, f)
}

func (m *mockFieldService) Delete(ctx context.Context, name string) (domfield.Field, error) {
	return m.deleteFunc(ctx, name)
}

func (m *mockFieldService) MoveUp(ctx context.Context, name string) error {
	return m.moveUpFunc(ctx, name)
}

func (m *mockFieldService) MoveDown(ctx context.Context, name string) error {
	return m.moveDownFunc(ctx, name)
}

func (m *mockFieldService) SetPositions(ctx context.Context, names []string) error {
	return m.setPositionsFunc(ctx, names)
}

func (m *mockFieldService) FieldInputs(ctx context.Context, typ, name string) ([]input.Input, error) {
	return m.fieldInputsFunc(ctx, typ, name)
}

func (m *mockFieldService) TypeInputs() []input.Input {
	return m.typeInputsFunc()
}

func (m *mockFieldService) FieldTable(ctx context.Context) (input.Table, error) {
	return m.fieldTableFunc(ctx)
}

// mockValueService implements ValueService with overridable functions.
type mockValueService struct {
	getFunc               func(ctx context.Context, name string) (domvalue.Value, error)
	listFunc              func(ctx context.Context, filter domvalue.Filter) ([]domvalue.Value, error)
	storeFunc             func(ctx context.Context, name string, values []domvalue.NamedValue, keepOthers bool) error
	deleteFunc            func(ctx context.Context, name string) error
	deleteFieldValuesFunc func(ctx context.Context, fieldID string) error
	asTextFunc            func(ctx context.Context, name string) ([]domvalue.TextValue, error)
	asFormatFunc          func(ctx context.Context, name string) ([]domvalue.FormatValue, error)
	valueInputsFunc       func(ctx context.Context, name string) ([]input.Input, error)
	newValueInputsFunc    func() []input.Input
	filterInputsFunc      func(ctx context.Context) ([]input.Input, error)
	valueTableFunc        func(ctx context.Context, filter domvalue.Filter) (input.Table, error)
}

func (m *mockValueService) Get(ctx context.Context, name string) (domvalue.Value, error) {
	return m.getFunc(ctx, name)
}

func (m *mockValueService) List(ctx context.Context, filter domvalue.Filter) ([]domvalue.Value, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockValueService) Store(ctx context.Context, name string, values []domvalue.NamedValue, keepOthers bool) error {
	return m.storeFunc(ctx, name, values, keepOthers)
}

func (m *mockValueService) Delete(ctx context.Context, name string) error {
	return m.deleteFunc(ctx, name)
}

func (m *mockValueService) DeleteFieldValues(ctx context.Context, fieldID string) error {
	return m.deleteFieldValuesFunc(ctx, fieldID)
}

func (m *mockValueService) AsText(ctx context.Context, name string) ([]domvalue.TextValue, error) {
	return m.asTextFunc(ctx, name)
}

func (m *mockValueService) AsFormat(ctx context.Context, name string) ([]domvalue.FormatValue, error) {
	return m.asFormatFunc(ctx, name)
}

func (m *mockValueService) ValueInputs(ctx context.Context, name string) ([]input.Input, error) {
	return m.valueInputsFunc(ctx, name)
}

func (m *mockValueService) NewValueInputs() []input.Input {
	return m.newValueInputsFunc()
}

func (m *mockValueService) FilterInputs(ctx context.Context) ([]input.Input, error) {
	return m.filterInputsFunc(ctx)
}

func (m *mockValueService) ValueTable(ctx context.Context, filter domvalue.Filter) (input.Table, error) {
	return m.valueTableFunc(ctx, filter)
}
