package schema

import (
	"encoding/json"
	"testing"
	"time"
)

func buildTestSchema(t *testing.T) (*Schema, ObjectID, ObjectID) {
	t.Helper()

	s := &Schema{}
	userID := s.AddColumn(Column{Name: "id", Type: TypeInteger})
	userName := s.AddColumn(Column{Name: "name"})
	users := s.AddTable("users", []ColumnID{userID, userName}, nil)

	privID := s.AddColumn(Column{Name: "id", Type: TypeInteger})
	privUser := s.AddColumn(Column{Name: "user_id", Type: TypeInteger})
	privileges := s.AddTable("privileges", []ColumnID{privID, privUser}, []ForeignKey{
		{Column: privUser, RefObject: users, RefColumn: userID},
	})

	return s, users, privileges
}

func TestObjectLookup(t *testing.T) {
	s, users, privileges := buildTestSchema(t)

	obj, ok := s.Object(users)
	if !ok || obj.Name != "users" {
		t.Fatalf("Object(users) = %+v ok=%v", obj, ok)
	}
	if obj.Kind != KindTable {
		t.Errorf("users kind = %v, want table", obj.Kind)
	}

	priv, _ := s.Object(privileges)
	if len(priv.ForeignKeys) != 1 || priv.ForeignKeys[0].RefObject != users {
		t.Errorf("privileges foreign keys = %+v, want one edge to users", priv.ForeignKeys)
	}
}

func TestViewsCarryNoForeignKeys(t *testing.T) {
	s := &Schema{}
	col := s.AddColumn(Column{Name: "total"})
	view := s.AddView("totals", []ColumnID{col})

	obj, _ := s.Object(view)
	if obj.Kind != KindView {
		t.Errorf("kind = %v, want view", obj.Kind)
	}
	if obj.ForeignKeys != nil {
		t.Errorf("view has foreign keys: %+v", obj.ForeignKeys)
	}
}

func TestValidate(t *testing.T) {
	s, _, _ := buildTestSchema(t)
	if err := s.Validate(); err != nil {
		t.Errorf("valid schema rejected: %v", err)
	}

	var other Schema
	stray := other.AddColumn(Column{Name: "stray"})

	bad := &Schema{}
	bad.AddTable("orphan", []ColumnID{stray}, nil)
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for dangling column reference")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, users, privileges := buildTestSchema(t)
	s.ObjectScores().SetClock(func() time.Time { return time.Unix(42, 0) })
	s.ObjectScores().Hit(users)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Schema
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := restored.Validate(); err != nil {
		t.Fatalf("restored schema invalid: %v", err)
	}

	obj, ok := restored.Object(privileges)
	if !ok || obj.Name != "privileges" {
		t.Fatalf("privileges ID invalid after round trip: %+v ok=%v", obj, ok)
	}
	if obj.ForeignKeys[0].RefObject != users {
		t.Errorf("foreign key target changed across round trip")
	}

	sc, ok := restored.ObjectScores().Get(users)
	if !ok || sc.Value != 4.0 || sc.Timestamp != 42 {
		t.Errorf("users score after round trip = %+v ok=%v, want value 4 at 42", sc, ok)
	}
}

func TestDataTypeParsing(t *testing.T) {
	tests := []struct {
		in   string
		want DataType
	}{
		{"int", TypeInteger},
		{"INTEGER", TypeInteger},
		{"text", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tt := range tests {
		if got := ParseDataType(tt.in); got != tt.want {
			t.Errorf("ParseDataType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
