// Package config handles global sq configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Profile names one schema source.
type Profile struct {
	// Driver selects the schema provider: "sqlite" or "yaml".
	Driver string `toml:"driver"`

	// Path is the database file or fixture file for the driver.
	Path string `toml:"path"`
}

// Config is the global sq configuration.
type Config struct {
	// DefaultProfile is used when --profile is not given.
	DefaultProfile string `toml:"default_profile"`

	// Profiles maps profile names to schema sources.
	Profiles map[string]Profile `toml:"profiles"`
}

// Profile returns the named profile, falling back to the default when name
// is empty. The resolved name is returned alongside so callers can key
// caches by it.
func (c *Config) Profile(name string) (Profile, string, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return Profile{}, "", fmt.Errorf("no profile specified and no default_profile configured")
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, "", fmt.Errorf("profile %q not found in config", name)
	}
	if p.Driver == "" {
		return Profile{}, "", fmt.Errorf("profile %q has no driver", name)
	}
	return p, name, nil
}

// Load loads the configuration from the default location. A missing file is
// not an error; it yields an empty config.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Home returns the sq home directory. SQ_HOME overrides the default of
// <user config dir>/sq.
func Home() string {
	if home := os.Getenv("SQ_HOME"); home != "" {
		return home
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "sq")
	}
	return "."
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(Home(), "config.toml")
}

// CacheDir returns the directory for cached schema snapshots.
func CacheDir() string {
	return filepath.Join(Home(), "cache")
}
