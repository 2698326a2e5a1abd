package cli

import (
	"testing"

	"github.com/aidanlsb/sq/internal/query"
	"github.com/aidanlsb/sq/internal/resolver"
	"github.com/aidanlsb/sq/internal/schema"
)

func TestResolvedShorthand(t *testing.T) {
	s := &schema.Schema{}
	userID := s.AddColumn(schema.Column{Name: "id", Type: schema.TypeInteger})
	users := s.AddTable("users", []schema.ColumnID{userID}, nil)
	fkCol := s.AddColumn(schema.Column{Name: "user_id", Type: schema.TypeInteger})
	s.AddTable("privileges", []schema.ColumnID{fkCol}, []schema.ForeignKey{
		{Column: fkCol, RefObject: users, RefColumn: userID},
	})

	parsed, err := query.Parse("user>priv name=admin")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	resolved, err := resolver.Resolve(s, parsed)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	got := resolvedShorthand(s, resolved)
	want := "users>privileges name=admin"
	if got != want {
		t.Errorf("resolvedShorthand = %q, want %q", got, want)
	}
}
