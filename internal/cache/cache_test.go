package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidanlsb/sq/internal/schema"
)

func TestLoadMissing(t *testing.T) {
	st := NewStore(t.TempDir())
	if _, err := st.Load("dev"); !errors.Is(err, ErrNotCached) {
		t.Errorf("got %v, want ErrNotCached", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := NewStore(filepath.Join(t.TempDir(), "cache"))

	s := &schema.Schema{}
	col := s.AddColumn(schema.Column{Name: "id", Type: schema.TypeInteger})
	users := s.AddTable("users", []schema.ColumnID{col}, nil)
	s.ObjectScores().SetClock(func() time.Time { return time.Unix(99, 0) })
	s.ObjectScores().Hit(users)

	if err := st.Save("dev", s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load("dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	obj, ok := got.Object(users)
	if !ok || obj.Name != "users" {
		t.Errorf("users ID invalid after reload: %+v ok=%v", obj, ok)
	}
	sc, ok := got.ObjectScores().Get(users)
	if !ok || sc.Timestamp != 99 {
		t.Errorf("score lost across reload: %+v ok=%v", sc, ok)
	}
}

func TestLoadRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	st := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "dev.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Load("dev"); err == nil {
		t.Error("expected decode error")
	}
}

func TestProfilesAreIsolated(t *testing.T) {
	st := NewStore(t.TempDir())

	a := &schema.Schema{}
	a.AddTable("alpha", nil, nil)
	b := &schema.Schema{}
	b.AddTable("beta", nil, nil)

	if err := st.Save("a", a); err != nil {
		t.Fatal(err)
	}
	if err := st.Save("b", b); err != nil {
		t.Fatal(err)
	}

	got, err := st.Load("b")
	if err != nil {
		t.Fatal(err)
	}
	for _, obj := range got.Objects() {
		if obj.Name != "beta" {
			t.Errorf("profile b contains %q", obj.Name)
		}
	}
}
