package query_test

import (
	"reflect"
	"testing"

	"quill/pkg/query"
)

func testProjection() *query.ProjectionMap {
	return query.
		NewProjectionMap("public", "generations", "g").
		Project("id", "ID").
		Project("persona_name", "PersonaName").
		Project("model", "Model").
		Project("created_at", "CreatedAt")
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []query.SortField
	}{
		{"empty", "", nil},
		{
			"single ascending",
			"persona_name",
			[]query.SortField{{Field: "persona_name"}},
		},
		{
			"single descending",
			"-created_at",
			[]query.SortField{{Field: "created_at", Descending: true}},
		},
		{
			"mixed with spaces",
			"persona_name, -created_at",
			[]query.SortField{
				{Field: "persona_name"},
				{Field: "created_at", Descending: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSortFields(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).Build()

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildWithConditions(t *testing.T) {
	model := "gemini-2.5-flash"
	name := "review"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Model", &model).
		WhereContains("PersonaName", &name).
		Build()

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g" +
		" WHERE g.model = $1 AND g.persona_name ILIKE $2"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args = %d, want 2", len(args))
	}
	if args[1] != "%review%" {
		t.Errorf("args[1] = %v, want %%review%%", args[1])
	}
}

func TestNilFiltersAreSkipped(t *testing.T) {
	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Model", (*string)(nil)).
		WhereContains("PersonaName", nil).
		Build()

	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestWhereSearch(t *testing.T) {
	search := "middleware"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereSearch(&search, "PersonaName", "Model").
		Build()

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g" +
		" WHERE (g.persona_name ILIKE $1 OR g.model ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%middleware%" || args[1] != "%middleware%" {
		t.Errorf("args = %v, want search pattern twice", args)
	}
}

func TestBuildCount(t *testing.T) {
	model := "gemini-2.5-flash"

	sql, args := query.
		NewBuilder(testProjection()).
		WhereEquals("Model", &model).
		BuildCount()

	want := "SELECT COUNT(*) FROM public.generations g WHERE g.model = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 {
		t.Errorf("args = %d, want 1", len(args))
	}
}

func TestBuildPage(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		BuildPage(3, 20)

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g" +
		" ORDER BY g.created_at DESC LIMIT 20 OFFSET 40"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestOrderByFieldsOverridesDefault(t *testing.T) {
	sql, _ := query.
		NewBuilder(testProjection(), query.SortField{Field: "CreatedAt", Descending: true}).
		OrderByFields([]query.SortField{{Field: "PersonaName"}}).
		Build()

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g" +
		" ORDER BY g.persona_name ASC"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
}

func TestBuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(testProjection()).BuildSingle("ID", "abc-123")

	want := "SELECT g.id, g.persona_name, g.model, g.created_at FROM public.generations g WHERE g.id = $1"
	if sql != want {
		t.Errorf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "abc-123" {
		t.Errorf("args = %v, want [abc-123]", args)
	}
}
