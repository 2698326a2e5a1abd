package db

import (
	"context"

	"github.com/aidanlsb/sq/internal/schema"
)

type yamlDriver struct {
	path string
}

// OpenYAML returns a driver backed by a declarative YAML schema file. Useful
// for fixtures and for databases sq has no driver for.
func OpenYAML(path string) Driver {
	return &yamlDriver{path: path}
}

func (d *yamlDriver) Schema(ctx context.Context) (*schema.Schema, error) {
	return schema.LoadFile(d.path)
}

func (d *yamlDriver) Close() error { return nil }
