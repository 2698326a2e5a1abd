package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidanlsb/sq/internal/cache"
	"github.com/aidanlsb/sq/internal/config"
	"github.com/aidanlsb/sq/internal/db"
	"github.com/aidanlsb/sq/internal/schema"
)

// currentProfile resolves the --profile flag against the loaded config.
func currentProfile() (config.Profile, string, error) {
	return getConfig().Profile(profileFlag)
}

func cacheStore() *cache.Store {
	return cache.NewStore(config.CacheDir())
}

// loadSchema returns the cached snapshot for the current profile,
// introspecting and caching it on first use.
func loadSchema(ctx context.Context) (*schema.Schema, string, error) {
	profile, name, err := currentProfile()
	if err != nil {
		return nil, "", err
	}

	st := cacheStore()
	s, err := st.Load(name)
	if errors.Is(err, cache.ErrNotCached) {
		s, err = refreshSchema(ctx, profile, name, st)
	}
	if err != nil {
		return nil, "", err
	}
	return s, name, nil
}

// refreshSchema introspects the profile's source and replaces its cached
// snapshot. Usage scores live in the snapshot, so a refresh resets them.
func refreshSchema(ctx context.Context, profile config.Profile, name string, st *cache.Store) (*schema.Schema, error) {
	driver, err := db.Connect(profile.Driver, profile.Path)
	if err != nil {
		return nil, err
	}
	defer driver.Close()

	s, err := driver.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch schema for profile %q: %w", name, err)
	}
	if err := st.Save(name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// saveScores writes the snapshot back after resolution so score updates
// survive the process.
func saveScores(name string, s *schema.Schema) error {
	return cacheStore().Save(name, s)
}
