// Package config loads the optional lang.toml file that supplies defaults
// for CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for by Find.
const FileName = "lang.toml"

// Config mirrors lang.toml. Zero values mean "not set".
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Analyze     AnalyzeConfig     `toml:"analyze"`

	// Path is the file the config was loaded from; empty for Default.
	Path string `toml:"-"`
}

type DiagnosticsConfig struct {
	Max      int    `toml:"max"`
	Color    string `toml:"color"`
	PathMode string `toml:"path_mode"`
}

type AnalyzeConfig struct {
	Jobs int `toml:"jobs"`
}

// Default returns the values used when no lang.toml exists.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto", PathMode: "auto"},
	}
}

// Find walks from startDir up to the filesystem root looking for lang.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load decodes path over Default. Keys unknown to Config are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads lang.toml above startDir, or returns Default.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Diagnostics.Max < 0 {
		errs = append(errs, fmt.Errorf("[diagnostics].max must be >= 0, got %d", c.Diagnostics.Max))
	}
	switch c.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		errs = append(errs, fmt.Errorf("[diagnostics].color must be auto|on|off, got %q", c.Diagnostics.Color))
	}
	switch c.Diagnostics.PathMode {
	case "auto", "absolute", "relative", "basename":
	default:
		errs = append(errs, fmt.Errorf("[diagnostics].path_mode must be auto|absolute|relative|basename, got %q", c.Diagnostics.PathMode))
	}
	if c.Analyze.Jobs < 0 {
		errs = append(errs, fmt.Errorf("[analyze].jobs must be >= 0, got %d", c.Analyze.Jobs))
	}
	return errors.Join(errs...)
}
