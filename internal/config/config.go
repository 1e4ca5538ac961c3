// =============================================================================
// SQL File Generator - Configuration Module
// =============================================================================
//
// This module holds the run configuration: the three substitution values,
// the output root and the handful of knobs around them.
//
// SOURCES (lowest to highest precedence):
//   1. Built-in defaults (location "region-us", dataset "doitintl-cmp-bq")
//   2. An optional YAML file passed with --config
//   3. Command-line flags and positionals
//
// The resulting Config is validated once and then treated as read-only for
// the rest of the process.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultLocation is substituted for <dataset-region> when no location is given.
	DefaultLocation = "region-us"

	// DefaultDataset is substituted for <dataset> when no dataset is given.
	DefaultDataset = "doitintl-cmp-bq"

	// DefaultSourceRoot is the directory the source directories are resolved against.
	DefaultSourceRoot = "."
)

// ErrUnsupportedManifest is returned for a manifest path with an unknown extension.
var ErrUnsupportedManifest = errors.New("unsupported manifest format")

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds everything a generation run needs.
type Config struct {
	// Project replaces <project-name>. Always taken from the command line.
	Project string `yaml:"-"`

	// Location replaces <dataset-region>.
	// Default: "region-us"
	Location string `yaml:"location"`

	// Dataset replaces <dataset>.
	// Default: "doitintl-cmp-bq"
	Dataset string `yaml:"dataset"`

	// OutputDir is the root the mirrored directories are written under.
	// Always taken from the command line.
	OutputDir string `yaml:"-"`

	// SourceRoot is where audit_log/ and information_schema/ live.
	// Default: "."
	SourceRoot string `yaml:"source_root"`

	// ManifestPath, when set, receives a manifest of the run (.xlsx or .yaml).
	ManifestPath string `yaml:"manifest"`

	// DryRun processes every file but writes nothing.
	DryRun bool `yaml:"dry_run"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// LOADING
// =============================================================================

// LoadFile reads a YAML configuration file and overlays its non-empty values
// onto cfg. Values present in the file win over cfg's current values;
// callers apply command-line overrides afterwards. The project and output
// directory are not read from the file.
//
// RETURNS:
//   - An error if the file cannot be read or parsed.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	merge(cfg, &fileCfg)
	return nil
}

// merge copies every set field of src into dst.
func merge(dst, src *Config) {
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Dataset != "" {
		dst.Dataset = src.Dataset
	}
	if src.SourceRoot != "" {
		dst.SourceRoot = src.SourceRoot
	}
	if src.ManifestPath != "" {
		dst.ManifestPath = src.ManifestPath
	}
	dst.DryRun = dst.DryRun || src.DryRun
	dst.Verbose = dst.Verbose || src.Verbose
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.Location == "" {
		cfg.Location = DefaultLocation
	}
	if cfg.Dataset == "" {
		cfg.Dataset = DefaultDataset
	}
	if cfg.SourceRoot == "" {
		cfg.SourceRoot = DefaultSourceRoot
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the options that can be rejected before any I/O.
// Substitution values are used verbatim, including empty strings; an
// unusable output path surfaces as an I/O error from the generator.
func (c *Config) Validate() error {
	if c.ManifestPath != "" {
		switch strings.ToLower(filepath.Ext(c.ManifestPath)) {
		case ".xlsx", ".yaml", ".yml":
		default:
			return fmt.Errorf("manifest %s: %w %q", c.ManifestPath, ErrUnsupportedManifest, filepath.Ext(c.ManifestPath))
		}
	}

	return nil
}

// SourcePath returns the path of a source directory under SourceRoot.
func (c *Config) SourcePath(dir string) string {
	return filepath.Join(c.SourceRoot, dir)
}

// OutputPath returns the mirrored output directory for a source directory.
func (c *Config) OutputPath(dir string) string {
	return filepath.Join(c.OutputDir, dir)
}
