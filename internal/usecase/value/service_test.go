package value

import (
	"context"
	"errors"
	"testing"

	"github.com/fluxkit-io/fieldstore/internal/domain"
	domvalue "github.com/fluxkit-io/fieldstore/internal/domain/value"
)

// --- Store ---

func TestStore_ValidRecord(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := repo.records["alice"]
	if rec.ID == "" {
		t.Error("no record id assigned")
	}
	if rec.Lookup("f-age") != float64(30) {
		t.Errorf("age row = %v", rec.Lookup("f-age"))
	}
	if rec.Lookup("f-color") != "#00ff00" {
		t.Errorf("color row = %v", rec.Lookup("f-color"))
	}
}

func TestStore_OutOfBoundsAbortsWholeWrite(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(200)),
		nv("color", "#00ff00"),
	}, false)
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}
	if _, ok := repo.records["alice"]; ok {
		t.Error("failed write must not persist anything")
	}
}

func TestStore_RequiredFieldMissing(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField())

	// age is required and not submitted; the write must fail as a whole.
	err := svc.Store(context.Background(), "alice", []domvalue.NamedValue{
		nv("color", "#00ff00"),
	}, false)
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}
}

func TestStore_UnknownFieldName(t *testing.T) {
	svc, _, _ := newTestService(t, ageField())

	err := svc.Store(context.Background(), "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("ghost", "x"),
	}, false)
	if !errors.Is(err, domain.ErrInvalidValue) {
		t.Fatalf("error = %v, want ErrInvalidValue", err)
	}
}

func TestStore_KeepOthersSeedsPreviousRows(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(31)),
	}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := repo.records["alice"]
	if rec.Lookup("f-age") != float64(31) {
		t.Errorf("age row = %v", rec.Lookup("f-age"))
	}
	if rec.Lookup("f-color") != "#00ff00" {
		t.Errorf("color row = %v, want carried over", rec.Lookup("f-color"))
	}
}

func TestStore_FullReplaceResetsUnmentioned(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(31)),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The color field resets to its canonical no-value form.
	if got := repo.records["alice"].Lookup("f-color"); got != "" {
		t.Errorf("color row = %v, want reset", got)
	}
}

func TestStore_RecordIdentitySurvivesRewrite(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := repo.records["alice"].ID

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(31)),
		nv("color", "#0000ff"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.records["alice"].ID != id {
		t.Error("record id changed across rewrite")
	}
}

// --- Get ---

func TestGet_ReturnsExternalView(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "alice" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Lookup("age") != float64(30) {
		t.Errorf("age = %v", got.Lookup("age"))
	}
	if got.Lookup("color") != "#00ff00" {
		t.Errorf("color = %v", got.Lookup("color"))
	}
}

func TestGet_DeletedFieldNeverSurfaces(t *testing.T) {
	svc, _, fl := newTestService(t, ageField(), colorField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Drop the color field from the schema; its row stays in storage.
	fl.fields = fl.fields[:1]

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Values) != 1 {
		t.Fatalf("got %d values, want live fields only", len(got.Values))
	}
	if got.Values[0].Name != "age" {
		t.Errorf("surviving value = %q", got.Values[0].Name)
	}
}

func TestGet_FieldAddedAfterRecord(t *testing.T) {
	svc, _, fl := newTestService(t, ageField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fl.fields = append(fl.fields, colorField())

	got, err := svc.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The new field reads as its canonical no-value form.
	if got.Lookup("color") != "" {
		t.Errorf("color = %v, want canonical empty", got.Lookup("color"))
	}
}

func TestGet_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t, ageField())

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

// --- List / filters ---

func seedRecords(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()
	for _, rec := range []struct {
		name  string
		age   float64
		color string
		tags  []string
	}{
		{"alice", 30, "#00ff00", []string{"go"}},
		{"bob", 45, "#ff0000", []string{"js"}},
		{"carol", 25, "#00ff00", nil},
	} {
		err := svc.Store(ctx, rec.name, []domvalue.NamedValue{
			nv("age", rec.age),
			nv("color", rec.color),
			nv("tags", rec.tags),
		}, false)
		if err != nil {
			t.Fatalf("seed %s: %v", rec.name, err)
		}
	}
}

func TestList_NoFilterReturnsAll(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	values, err := svc.List(context.Background(), domvalue.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 3 {
		t.Fatalf("got %d values", len(values))
	}
	if values[0].Name != "alice" || values[2].Name != "carol" {
		t.Errorf("order = %s..%s", values[0].Name, values[2].Name)
	}
}

func TestList_RangeFilter(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	values, err := svc.List(context.Background(), domvalue.Filter{
		Fields: []domvalue.FieldFilter{{Field: "age", Attribute: "from", Value: float64(30)}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want alice and bob", len(values))
	}
}

func TestList_EqualityFilter(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	values, err := svc.List(context.Background(), domvalue.Filter{
		Fields: []domvalue.FieldFilter{{Field: "color", Value: "#00ff00"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want alice and carol", len(values))
	}
}

func TestList_MultiSelectIntersection(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	values, err := svc.List(context.Background(), domvalue.Filter{
		Fields: []domvalue.FieldFilter{{Field: "tags", Value: "go,js"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %d values, want alice and bob", len(values))
	}
}

func TestList_MalformedFilterAbortsQuery(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	for _, filter := range []domvalue.Filter{
		{Fields: []domvalue.FieldFilter{{Field: "ghost", Value: "x"}}},
		{Fields: []domvalue.FieldFilter{{Field: "age", Attribute: "contains", Value: "3"}}},
		{Fields: []domvalue.FieldFilter{{Field: "age", Attribute: "from", Value: "not a number"}}},
	} {
		_, err := svc.List(context.Background(), filter)
		if !errors.Is(err, domain.ErrInvalidFilter) {
			t.Errorf("filter %+v: error = %v, want ErrInvalidFilter", filter, err)
		}
	}
}

func TestList_NameFilter(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	values, err := svc.List(context.Background(), domvalue.Filter{Name: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 1 || values[0].Name != "bob" {
		t.Fatalf("values = %+v", values)
	}
}

func TestList_HasValueFalsePlaceholder(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)
	no := false

	// A stored name with has-value=false matches nothing.
	values, err := svc.List(context.Background(), domvalue.Filter{Name: "alice", HasValue: &no})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("got %d values for stored name", len(values))
	}

	// An unstored name yields a placeholder with canonical empty values.
	values, err = svc.List(context.Background(), domvalue.Filter{Name: "dave", HasValue: &no})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(values) != 1 || values[0].Name != "dave" {
		t.Fatalf("values = %+v", values)
	}
	if values[0].Lookup("age") != nil {
		t.Errorf("placeholder age = %v", values[0].Lookup("age"))
	}
}

// --- Delete / cascade ---

func TestDelete_RemovesRecord(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	if err := svc.Delete(context.Background(), "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.records["alice"]; ok {
		t.Error("record still stored")
	}
}

func TestDeleteFieldValues_StripsRows(t *testing.T) {
	svc, repo, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	if err := svc.DeleteFieldValues(context.Background(), "f-age"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, rec := range repo.records {
		for _, fv := range rec.Values {
			if fv.FieldID == "f-age" {
				t.Errorf("record %s still carries age row", name)
			}
		}
	}
}

// --- Projections ---

func TestAsText_RendersThroughFormatter(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", ""),
		nv("tags", []string{"go"}),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	texts, err := svc.AsText(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byName := map[string]string{}
	for _, tv := range texts {
		byName[tv.Name] = tv.Text
	}
	if byName["age"] != "30" {
		t.Errorf("age text = %q", byName["age"])
	}
	if byName["color"] != "-" {
		t.Errorf("empty color text = %q, want dash", byName["color"])
	}
	if byName["tags"] != "Go" {
		t.Errorf("tags text = %q, want option label", byName["tags"])
	}
}

func TestAsFormat_CarriesKinds(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
		nv("tags", nil),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	formats, err := svc.AsFormat(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byName := map[string]domvalue.FormatValue{}
	for _, fv := range formats {
		byName[fv.Name] = fv
	}
	if byName["color"].Kind != "color" {
		t.Errorf("color kind = %q", byName["color"].Kind)
	}
	if byName["color"].Value != "#00ff00" {
		t.Errorf("color value = %v", byName["color"].Value)
	}
	if byName["age"].Kind != "" {
		t.Errorf("age kind = %q", byName["age"].Kind)
	}
}

func TestValueInputs_BoundToCurrentValues(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	ctx := context.Background()

	if err := svc.Store(ctx, "alice", []domvalue.NamedValue{
		nv("age", float64(30)),
		nv("color", "#00ff00"),
		nv("tags", []string{"go"}),
	}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inputs, err := svc.ValueInputs(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 3 {
		t.Fatalf("got %d inputs", len(inputs))
	}
	if inputs[0].Name != "age" || inputs[0].Value != float64(30) {
		t.Errorf("age input = %+v", inputs[0])
	}
	if !inputs[0].Required {
		t.Error("age input should be required")
	}
}

func TestValueInputs_MissingRecord(t *testing.T) {
	svc, _, _ := newTestService(t, ageField())

	_, err := svc.ValueInputs(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestFilterInputs_NamePerFieldCriteria(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField())

	inputs, err := svc.FilterInputs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := map[string]bool{}
	for _, in := range inputs {
		names[in.Name] = true
		if in.Required {
			t.Errorf("filter input %q must not be required", in.Name)
		}
	}
	for _, want := range []string{"name", "has-value", "field-age", "field-age.from", "field-age.to", "field-color"} {
		if !names[want] {
			t.Errorf("missing filter input %q", want)
		}
	}
}

func TestValueTable_ColumnsAndRows(t *testing.T) {
	svc, _, _ := newTestService(t, ageField(), colorField(), tagsField())
	seedRecords(t, svc)

	table, err := svc.ValueTable(context.Background(), domvalue.Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Columns) != 4 {
		t.Fatalf("got %d columns", len(table.Columns))
	}
	if table.Columns[0].Key != "name" {
		t.Errorf("first column = %+v", table.Columns[0])
	}
	if table.Columns[2].Kind != "color" {
		t.Errorf("color column kind = %q", table.Columns[2].Kind)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("got %d rows", len(table.Rows))
	}
	if table.Rows[0]["name"] != "alice" {
		t.Errorf("first row = %v", table.Rows[0])
	}
	if table.Rows[0]["field-color"] != "#00ff00" {
		t.Errorf("color cell = %v", table.Rows[0]["field-color"])
	}
}
