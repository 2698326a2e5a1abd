// Package arena provides an append-only store with stable, type-tagged IDs.
package arena

import (
	"encoding/json"
	"fmt"
	"iter"
)

// ID is an opaque handle to a value stored in an Arena[T]. The type parameter
// keeps IDs for different entity kinds incompatible at compile time; two IDs
// are equal iff they were issued for the same slot.
type ID[T any] struct {
	index int
}

// IDAt returns the ID for a given allocation index. Intended for decoding
// persisted documents; the index is not validated against any arena.
func IDAt[T any](index int) ID[T] {
	return ID[T]{index: index}
}

// Index returns the allocation position backing this ID. Allocation order is
// the only ordering IDs carry; it is used solely as a deterministic tie-break.
func (id ID[T]) Index() int { return id.index }

func (id ID[T]) String() string {
	return fmt.Sprintf("ID(%d)", id.index)
}

// MarshalJSON encodes the ID as its bare allocation index.
func (id ID[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.index)
}

// UnmarshalJSON decodes an ID from its bare allocation index.
func (id *ID[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &id.index)
}

// Arena is an append-only ordered collection. Values are never removed or
// moved, so an ID issued by Alloc stays valid for the arena's lifetime.
//
// The zero value is an empty arena ready for use.
type Arena[T any] struct {
	items []T
}

// Alloc appends value and returns its ID. IDs are issued in strictly
// increasing allocation order and never reused.
func (a *Arena[T]) Alloc(value T) ID[T] {
	id := ID[T]{index: len(a.items)}
	a.items = append(a.items, value)
	return id
}

// Get returns a pointer to the value for id, or false for IDs the arena never
// issued (including IDs belonging to a different arena of the same type).
func (a *Arena[T]) Get(id ID[T]) (*T, bool) {
	if id.index < 0 || id.index >= len(a.items) {
		return nil, false
	}
	return &a.items[id.index], true
}

// Len returns the number of allocated values.
func (a *Arena[T]) Len() int { return len(a.items) }

// All iterates over (ID, value) pairs in allocation order.
func (a *Arena[T]) All() iter.Seq2[ID[T], *T] {
	return func(yield func(ID[T], *T) bool) {
		for i := range a.items {
			if !yield(ID[T]{index: i}, &a.items[i]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the arena as a plain array in allocation order.
// Round-tripping the document preserves every issued ID.
func (a Arena[T]) MarshalJSON() ([]byte, error) {
	if a.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.items)
}

// UnmarshalJSON replaces the arena's contents with the decoded array.
func (a *Arena[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.items)
}
