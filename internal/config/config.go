// Package config carries CLI settings and optional file-based defaults.
// There is no process-wide mutable state: a Settings value is built at
// startup and passed into each component.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the resolved runtime options for one invocation.
type Settings struct {
	Quiet   bool
	Verbose bool
	JSON    bool

	// DefaultManager, when set, is used as the preferred manager for
	// install operations unless overridden on the command line.
	DefaultManager string

	// SearchLimit caps merged search results; zero means the engine
	// default.
	SearchLimit int
}

// File is the on-disk configuration, read from ~/.crossfire/config.yaml
// when present.
type File struct {
	DefaultManager string `yaml:"default_manager"`
	SearchLimit    int    `yaml:"search_limit"`
	Quiet          bool   `yaml:"quiet"`
}

// LoadFile reads the configuration file at path. A missing file yields
// zero-value defaults and no error.
func LoadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return f, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// BaseDir returns the crossfire data directory (~/.crossfire), creating
// it if needed.
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	dir := filepath.Join(home, ".crossfire")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create crossfire directory: %w", err)
	}
	return dir, nil
}

// DBPath returns the default record-store path.
func DBPath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "packages.db"), nil
}

// CacheDir returns the cache directory for downloaded catalogs,
// creating it if needed.
func CacheDir() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	cache := filepath.Join(dir, "cache")
	if err := os.MkdirAll(cache, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return cache, nil
}

// FilePath returns the default configuration file path.
func FilePath() (string, error) {
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
