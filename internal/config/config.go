// Package config loads cmd/hexroute's optional YAML configuration
// file into a plain struct via yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for the hexroute command façade. None of
// these affect engine semantics — they only size the result cache and
// control observability.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error" (default "info").
	LogLevel string `yaml:"log_level"`
	// CacheCapacity is the result cache's slot count (default rcache.DefaultCapacity).
	CacheCapacity int `yaml:"cache_capacity"`
	// MaxDimension caps the C/R accepted by an init command (default 4096).
	MaxDimension int `yaml:"max_dimension"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		LogLevel:      "info",
		CacheCapacity: 0, // zero selects rcache.DefaultCapacity
		MaxDimension:  4096,
	}
}

// Load reads and parses a YAML config file at path, starting from
// Default() so an omitted field keeps its default value. A missing
// path is not an error for the caller to treat specially — Load
// itself only returns an error when path is non-empty and the file
// cannot be read or parsed.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
