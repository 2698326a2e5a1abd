// Package score tracks time-decayed usage scores for schema entities.
package score

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/aidanlsb/sq/internal/arena"
)

// Aging brackets for Hit, in seconds of elapsed time since the last hit.
const (
	hour = 3600
	day  = 86400
	week = 604800
)

// seedValue is the score assigned to an entity on its first hit.
const seedValue = 4.0

// Score is the recency-weighted usage weight of one entity at its last hit.
// Absence of a Score means the entity has never been resolved.
type Score struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"`
}

// Table maps entity IDs to scores. The zero value is an empty table ready
// for use.
//
// Ranking reads scores first and applies exactly one Hit after the winner is
// chosen; the mutex scopes that read-modify-write so a match is never
// influenced by its own in-flight update when the table is shared.
type Table[T any] struct {
	mu     sync.Mutex
	scores map[arena.ID[T]]Score
	now    func() time.Time
}

// SetClock overrides the table's time source. Tests use it to replay hits at
// fixed instants.
func (t *Table[T]) SetClock(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

func (t *Table[T]) clock() time.Time {
	if t.now == nil {
		return time.Now()
	}
	return t.now()
}

// Get returns the score for id, or false if the entity has never been hit.
func (t *Table[T]) Get(id arena.ID[T]) (Score, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.scores[id]
	return s, ok
}

// Len returns the number of scored entities.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.scores)
}

// Set stores a score verbatim, bypassing the aging formula. Snapshot loading
// and tests use it; resolution goes through Hit.
func (t *Table[T]) Set(id arena.ID[T], s Score) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.scores == nil {
		t.scores = make(map[arena.ID[T]]Score)
	}
	t.scores[id] = s
}

// Hit records a successful resolution of id and returns the updated score.
//
// A first hit seeds the value at 4.0. Subsequent hits scale the value by how
// long ago the previous hit happened: x4 within an hour, x2 within a day,
// /2 within a week, /4 beyond that. The timestamp always moves to now.
func (t *Table[T]) Hit(id arena.ID[T]) Score {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock().Unix()
	if t.scores == nil {
		t.scores = make(map[arena.ID[T]]Score)
	}

	s, ok := t.scores[id]
	if !ok {
		s = Score{Value: seedValue, Timestamp: now}
		t.scores[id] = s
		return s
	}

	age := now - s.Timestamp
	switch {
	case age < hour:
		s.Value *= 4
	case age < day:
		s.Value *= 2
	case age < week:
		s.Value /= 2
	default:
		s.Value /= 4
	}
	s.Timestamp = now
	t.scores[id] = s
	return s
}

type tableEntry[T any] struct {
	ID        arena.ID[T] `json:"id"`
	Value     float64     `json:"value"`
	Timestamp int64       `json:"timestamp"`
}

// MarshalJSON encodes the table as an array of entries ordered by entity
// allocation index, so snapshots are deterministic.
func (t *Table[T]) MarshalJSON() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]tableEntry[T], 0, len(t.scores))
	for id, s := range t.scores {
		entries = append(entries, tableEntry[T]{ID: id, Value: s.Value, Timestamp: s.Timestamp})
	}
	slices.SortFunc(entries, func(a, b tableEntry[T]) int {
		return a.ID.Index() - b.ID.Index()
	})
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the table's contents with the decoded entries.
func (t *Table[T]) UnmarshalJSON(data []byte) error {
	var entries []tableEntry[T]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.scores = make(map[arena.ID[T]]Score, len(entries))
	for _, e := range entries {
		t.scores[e.ID] = Score{Value: e.Value, Timestamp: e.Timestamp}
	}
	return nil
}
