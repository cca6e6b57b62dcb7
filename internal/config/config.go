// Package config loads tool settings from an optional modmap.toml found
// in the working directory or any of its parents. Command-line flags
// override everything here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the merged view of modmap.toml.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
}

// OutputConfig controls how results and diagnostics are rendered.
type OutputConfig struct {
	Format         string `toml:"format"`          // "pretty" or "json"
	Color          string `toml:"color"`           // "auto", "always", "never"
	MaxDiagnostics int    `toml:"max_diagnostics"` // 0 means default
}

// CacheConfig controls the on-disk header cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty means the user cache dir
}

// Default returns the configuration used when no modmap.toml exists.
func Default() Config {
	return Config{
		Output: OutputConfig{
			Format:         "pretty",
			Color:          "auto",
			MaxDiagnostics: 64,
		},
		Cache: CacheConfig{Enabled: true},
	}
}

// FindModmapToml walks up from startDir to locate modmap.toml.
func FindModmapToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "modmap.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load returns the configuration for startDir. A missing modmap.toml is
// not an error; Default() is returned with ok=false.
func Load(startDir string) (Config, bool, error) {
	path, ok, err := FindModmapToml(startDir)
	if err != nil || !ok {
		return Default(), false, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), true, err
	}
	return cfg, true, nil
}

// LoadFile parses one modmap.toml. Missing keys keep their defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(path, cfg, meta); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func validate(path string, cfg Config, meta toml.MetaData) error {
	if meta.IsDefined("output", "format") {
		switch cfg.Output.Format {
		case "pretty", "json":
		default:
			return fmt.Errorf("%s: [output].format must be \"pretty\" or \"json\", got %q", path, cfg.Output.Format)
		}
	}
	if meta.IsDefined("output", "color") {
		switch cfg.Output.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("%s: [output].color must be \"auto\", \"always\" or \"never\", got %q", path, cfg.Output.Color)
		}
	}
	if cfg.Output.MaxDiagnostics < 0 {
		return fmt.Errorf("%s: [output].max_diagnostics must not be negative", path)
	}
	return nil
}
