package sqlgen

import (
	"testing"

	"github.com/aidanlsb/sq/internal/query"
	"github.com/aidanlsb/sq/internal/resolver"
	"github.com/aidanlsb/sq/internal/schema"
)

func TestRenderSelect(t *testing.T) {
	q := &Query{
		Projection: []FieldRef{
			{Table: "u", Field: "id"},
			{Table: "u", Field: "name"},
		},
		From: TableRef{Name: "users", Alias: "u"},
		Where: Binary{
			Left:  Ref{FieldRef{Table: "u", Field: "active"}},
			Op:    OpEq,
			Right: IntLit{Value: 1},
		},
	}

	got := Dialect{}.Render(q)
	want := "SELECT u.id, u.name FROM users AS u WHERE u.active = 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderJoin(t *testing.T) {
	q := &Query{
		Projection: []FieldRef{
			{Table: "u", Field: "id"},
			{Table: "p", Field: "title"},
		},
		From: TableRef{Name: "users", Alias: "u"},
		Joins: []Join{{
			Type:  JoinLeft,
			Table: TableRef{Name: "posts", Alias: "p"},
			On: Binary{
				Left:  Ref{FieldRef{Table: "u", Field: "id"}},
				Op:    OpEq,
				Right: Ref{FieldRef{Table: "p", Field: "user_id"}},
			},
		}},
	}

	got := Dialect{}.Render(q)
	want := "SELECT u.id, p.title FROM users AS u LEFT JOIN posts AS p ON u.id = p.user_id"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderEmptyProjection(t *testing.T) {
	q := &Query{From: TableRef{Name: "logs"}}
	if got := (Dialect{}).Render(q); got != "SELECT * FROM logs" {
		t.Errorf("got %q", got)
	}
}

func TestStringLitEscaping(t *testing.T) {
	got := Dialect{}.Expr(StringLit{Value: "o'brien"})
	if got != "'o''brien'" {
		t.Errorf("got %q", got)
	}
}

func TestQuoteIdent(t *testing.T) {
	d := Dialect{QuoteIdent: func(s string) string { return `"` + s + `"` }}
	q := &Query{
		Projection: []FieldRef{{Table: "t0", Field: "id"}},
		From:       TableRef{Name: "users", Alias: "t0"},
	}
	want := `SELECT "t0"."id" FROM "users" AS "t0"`
	if got := d.Render(q); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildFromResolvedQuery(t *testing.T) {
	s := &schema.Schema{}
	userID := s.AddColumn(schema.Column{Name: "id", Type: schema.TypeInteger})
	userName := s.AddColumn(schema.Column{Name: "name"})
	s.AddTable("users", []schema.ColumnID{userID, userName}, nil)

	privUser := s.AddColumn(schema.Column{Name: "user_id", Type: schema.TypeInteger})
	privName := s.AddColumn(schema.Column{Name: "name"})
	s.AddTable("privileges", []schema.ColumnID{privUser, privName}, nil)
	// Wire the FK after both tables exist.
	users := mustObjectID(t, s, "users")
	priv, _ := s.Object(mustObjectID(t, s, "privileges"))
	priv.ForeignKeys = []schema.ForeignKey{{Column: privUser, RefObject: users, RefColumn: userID}}

	parsed, err := query.Parse("user>priv name=admin level>=2")
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := resolver.Resolve(s, parsed)
	if err != nil {
		t.Fatal(err)
	}

	built, err := Build(s, resolved)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := Dialect{}.Render(built)
	want := "SELECT t0.id, t0.name, t1.user_id, t1.name " +
		"FROM users AS t0 INNER JOIN privileges AS t1 ON t1.user_id = t0.id " +
		"WHERE name = 'admin' AND level >= 2"
	if got != want {
		t.Errorf("got %q,\nwant %q", got, want)
	}
}

func TestBuildMissingEdge(t *testing.T) {
	s := &schema.Schema{}
	users := s.AddTable("users", nil, nil)
	logs := s.AddTable("logs", nil, nil)

	q := &query.Query[schema.ObjectID, string]{
		Object: &query.ObjectTree[schema.ObjectID]{
			Root:     users,
			Children: []*query.ObjectTree[schema.ObjectID]{{Root: logs}},
		},
	}
	if _, err := Build(s, q); err == nil {
		t.Error("expected error for edge without a foreign key")
	}
}

func mustObjectID(t *testing.T, s *schema.Schema, name string) schema.ObjectID {
	t.Helper()
	for id, obj := range s.Objects() {
		if obj.Name == name {
			return id
		}
	}
	t.Fatalf("object %q not found", name)
	return schema.ObjectID{}
}
