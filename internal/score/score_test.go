package score

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aidanlsb/sq/internal/arena"
)

type thing struct{ name string }

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestFirstHitSeedsScore(t *testing.T) {
	var things arena.Arena[thing]
	id := things.Alloc(thing{name: "users"})

	var tbl Table[thing]
	tbl.SetClock(fixedClock(1000))

	s := tbl.Hit(id)
	if s.Value != 4.0 {
		t.Errorf("first hit value = %v, want 4.0", s.Value)
	}
	if s.Timestamp != 1000 {
		t.Errorf("first hit timestamp = %v, want 1000", s.Timestamp)
	}
}

func TestHitAging(t *testing.T) {
	tests := []struct {
		name    string
		elapsed int64
		want    float64
	}{
		{name: "within the hour quadruples", elapsed: 3599, want: 16.0},
		{name: "within the day doubles", elapsed: 86399, want: 8.0},
		{name: "within the week halves", elapsed: 604799, want: 2.0},
		{name: "beyond the week quarters", elapsed: 604800, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var things arena.Arena[thing]
			id := things.Alloc(thing{name: "users"})

			var tbl Table[thing]
			tbl.SetClock(fixedClock(1000))
			tbl.Hit(id) // seed at 4.0

			tbl.SetClock(fixedClock(1000 + tt.elapsed))
			s := tbl.Hit(id)
			if s.Value != tt.want {
				t.Errorf("value after %ds = %v, want %v", tt.elapsed, s.Value, tt.want)
			}
			if s.Timestamp != 1000+tt.elapsed {
				t.Errorf("timestamp = %v, want %v", s.Timestamp, 1000+tt.elapsed)
			}
		})
	}
}

func TestGetUnscored(t *testing.T) {
	var things arena.Arena[thing]
	id := things.Alloc(thing{name: "users"})

	var tbl Table[thing]
	if _, ok := tbl.Get(id); ok {
		t.Error("expected no score before any hit")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var things arena.Arena[thing]
	a := things.Alloc(thing{name: "a"})
	b := things.Alloc(thing{name: "b"})

	var tbl Table[thing]
	tbl.SetClock(fixedClock(500))
	tbl.Hit(b)
	tbl.Hit(a)

	data, err := json.Marshal(&tbl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Table[thing]
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, id := range []arena.ID[thing]{a, b} {
		want, _ := tbl.Get(id)
		got, ok := restored.Get(id)
		if !ok || got != want {
			t.Errorf("score for %v after round trip = %+v ok=%v, want %+v", id, got, ok, want)
		}
	}
}
