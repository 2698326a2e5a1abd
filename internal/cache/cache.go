// Package cache persists schema snapshots per profile so resolution (and its
// usage scores) survives across invocations without re-introspecting the
// database every time.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aidanlsb/sq/internal/atomicfile"
	"github.com/aidanlsb/sq/internal/schema"
)

// ErrNotCached indicates no snapshot exists for the profile yet.
var ErrNotCached = errors.New("no cached schema for profile")

// Store reads and writes schema snapshots under one directory, one JSON
// document per profile.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (st *Store) path(profile string) string {
	return filepath.Join(st.dir, profile+".json")
}

// Load reads the snapshot for a profile. The loaded schema is validated:
// snapshot IDs are positional, so a corrupt or hand-edited document must not
// be trusted.
func (st *Store) Load(profile string) (*schema.Schema, error) {
	data, err := os.ReadFile(st.path(profile))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotCached, profile)
	}
	if err != nil {
		return nil, fmt.Errorf("read schema cache: %w", err)
	}

	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode schema cache for %q: %w", profile, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cached schema for %q is invalid: %w", profile, err)
	}
	return &s, nil
}

// Save writes the snapshot for a profile atomically.
func (st *Store) Save(profile string, s *schema.Schema) error {
	if err := os.MkdirAll(st.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schema cache: %w", err)
	}
	return atomicfile.WriteFile(st.path(profile), data, 0o644)
}
