// Package db implements schema providers: drivers that produce a fully
// populated schema.Schema for the resolver to consume. The core treats the
// provider as an external collaborator; nothing downstream executes queries
// through it.
package db

import (
	"context"
	"fmt"

	"github.com/aidanlsb/sq/internal/schema"
)

// Driver fetches schema snapshots from one configured source.
type Driver interface {
	// Schema builds a schema snapshot: objects, columns and foreign keys.
	Schema(ctx context.Context) (*schema.Schema, error)

	// Close releases the underlying connection, if any.
	Close() error
}

// Connect opens the driver named by a profile. Supported drivers are
// "sqlite" (introspects a SQLite database file) and "yaml" (reads a
// declarative fixture file).
func Connect(driver, path string) (Driver, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(path)
	case "yaml":
		return OpenYAML(path), nil
	default:
		return nil, fmt.Errorf("unknown driver %q (want sqlite or yaml)", driver)
	}
}
