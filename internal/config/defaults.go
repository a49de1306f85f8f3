// Package config provides centralized configuration defaults for vinakey.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFile represents the structure of config.toml
type ConfigFile struct {
	Defaults         Defaults `toml:"defaults"`
	AvailableMethods []string `toml:"available_methods"`
}

// Defaults holds all default values
type Defaults struct {
	Method    string `toml:"method"`
	Enabled   bool   `toml:"enabled"`
	Style     string `toml:"style"`
	OutputDir string `toml:"output_dir"`
	Parallel  bool   `toml:"parallel"`
	Workers   int    `toml:"workers"`
	Quiet     bool   `toml:"quiet"`
	Verbose   bool   `toml:"verbose"`
	Metrics   bool   `toml:"metrics"`
}

// Hardcoded fallback defaults (used if config.toml not found)
var fallbackDefaults = Defaults{
	Method:    "telex",
	Enabled:   true,
	Style:     "modern",
	OutputDir: "output",
	Parallel:  true,
	Workers:   0,
	Quiet:     false,
	Verbose:   false,
	Metrics:   false,
}

var fallbackMethods = []string{"telex", "vni", "viqr", "viqr*", "auto", "off"}

// loaded holds the parsed config (nil if not loaded yet)
var loaded *ConfigFile

// Load reads config.toml from the project root
func Load() *ConfigFile {
	if loaded != nil {
		return loaded
	}

	// Try to find config.toml by walking up from executable or cwd
	paths := []string{
		"config.toml",
		"../config.toml",
		"../../config.toml",
	}

	// Also try from executable location
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, "config.toml"),
			filepath.Join(dir, "..", "config.toml"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if cfg, err := LoadFile(path); err == nil {
				loaded = cfg
				return loaded
			}
		}
	}

	// Return fallback if config.toml not found
	loaded = &ConfigFile{
		Defaults:         fallbackDefaults,
		AvailableMethods: fallbackMethods,
	}
	return loaded
}

// LoadFile decodes a single config file. Keys missing from the file keep
// their fallback values.
func LoadFile(path string) (*ConfigFile, error) {
	cfg := ConfigFile{
		Defaults:         fallbackDefaults,
		AvailableMethods: fallbackMethods,
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Use replaces the loaded config, as when a file is named on the command line.
func Use(cfg *ConfigFile) {
	loaded = cfg
}

// Convenience accessors that load config on first access
var (
	DefaultMethod    = func() string { return Load().Defaults.Method }
	DefaultEnabled   = func() bool { return Load().Defaults.Enabled }
	DefaultStyle     = func() string { return Load().Defaults.Style }
	DefaultOutputDir = func() string { return Load().Defaults.OutputDir }
	DefaultParallel  = func() bool { return Load().Defaults.Parallel }
	DefaultWorkers   = func() int { return Load().Defaults.Workers }
	DefaultQuiet     = func() bool { return Load().Defaults.Quiet }
	DefaultVerbose   = func() bool { return Load().Defaults.Verbose }
	DefaultMetrics   = func() bool { return Load().Defaults.Metrics }
)

// MaxWorkers is the cap for parallel workers
const MaxWorkers = 8

// AvailableMethodsStr returns available methods as comma-separated string.
func AvailableMethodsStr() string {
	return strings.Join(Load().AvailableMethods, ", ")
}
