package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/unexotica/internal/bundle"
	"github.com/llehouerou/unexotica/internal/override"
)

const (
	defaultWorkers = 8
	maxWorkers     = 64
)

type Config struct {
	Title   string `koanf:"title"`   // game title used for override lookups
	DBPath  string `koanf:"db_path"` // empty means the per-user data directory
	Workers int    `koanf:"workers"` // decoder goroutines (1-64, default: 8)

	// Extra subsong exceptions, merged over the built-in ones
	Overrides []OverrideConfig `koanf:"override"`

	// Samples files that don't follow the naming convention
	Samples []SamplesConfig `koanf:"samples"`
}

// OverrideConfig is one [[override]] table.
type OverrideConfig struct {
	Title    string `koanf:"title"`
	File     string `koanf:"file"`
	Single   bool   `koanf:"single"`   // publish a lone subsong as a split entry
	Unsplit  bool   `koanf:"unsplit"`  // never split this file
	Subsongs []int  `koanf:"subsongs"` // explicit zero-based indices
	Range    []int  `koanf:"range"`    // [from, to], inclusive, appended to subsongs
}

// SamplesConfig is one [[samples]] table.
type SamplesConfig struct {
	Song    string `koanf:"song"`
	Samples string `koanf:"samples"`
}

// Load reads the default config files. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given files in order, later values winning.
// Missing files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		path = expandPath(path)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DBPath != "" {
		cfg.DBPath = expandPath(cfg.DBPath)
	}

	for i, o := range cfg.Overrides {
		if o.Title == "" || o.File == "" {
			return nil, fmt.Errorf("override %d: title and file are required", i+1)
		}
		if len(o.Range) != 0 && len(o.Range) != 2 {
			return nil, fmt.Errorf("override %d: range needs exactly two bounds", i+1)
		}
	}
	for i, s := range cfg.Samples {
		if s.Song == "" || s.Samples == "" {
			return nil, fmt.Errorf("samples %d: song and samples are required", i+1)
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/unexotica/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "unexotica", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetWorkers returns the worker count with the default applied.
func (c *Config) GetWorkers() int {
	if c.Workers <= 0 || c.Workers > maxWorkers {
		return defaultWorkers
	}
	return c.Workers
}

// Entry converts the table to an override entry.
func (o OverrideConfig) Entry() override.Entry {
	e := override.Entry{Title: o.Title, File: o.File, Single: o.Single}
	switch {
	case o.Unsplit:
		e.Subsongs = []int{}
	case len(o.Range) == 2:
		e.Subsongs = append(append([]int{}, o.Subsongs...), override.Range(o.Range[0], o.Range[1])...)
	case len(o.Subsongs) > 0:
		e.Subsongs = o.Subsongs
	}
	return e
}

// OverrideTable returns the built-in exceptions with the configured ones
// layered on top.
func (c *Config) OverrideTable() *override.Table {
	entries := override.Defaults()
	for _, o := range c.Overrides {
		entries = append(entries, o.Entry())
	}
	return override.New(entries...)
}

// SamplesOverrides returns the built-in samples pairings with the
// configured ones layered on top.
func (c *Config) SamplesOverrides() map[string]string {
	m := bundle.DefaultSamples()
	for _, s := range c.Samples {
		m[s.Song] = s.Samples
	}
	return m
}
