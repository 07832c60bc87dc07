// Package config provides configuration management for gedsite.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Site: output, bios_dir, people_dir, with_families
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Source (the GEDCOM file path, per invocation)
//   - Watch (build command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GEDSITE_ prefix with underscores for nesting:
//
//	GEDSITE_SITE_OUTPUT=/srv/vault
//	GEDSITE_SITE_BIOS_DIR=/srv/vault/bios
//	GEDSITE_LOG_LEVEL=info
//	GEDSITE_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gedsite configuration.
type Config struct {
	// Site contains document emission settings.
	Site SiteConfig `mapstructure:"site" yaml:"site"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for document
	// emission. Default value is set according to the number of
	// available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// Source is the GEDCOM file to process. Set per invocation by the
	// CLI, never stored in config.yaml.
	Source string

	// Watch keeps the build command running and rebuilds when the
	// source file or the biography directory change.
	Watch bool

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value
	// for it.
	HomeDir string
}

// SiteConfig contains document emission settings.
type SiteConfig struct {
	// Output is the directory the documents are written into.
	Output string `mapstructure:"output" yaml:"output"`

	// BiosDir is the directory with per-person biography files, named
	// by record id (I42.md) or by a normalized name slug
	// (john-smith.md). Empty means no biographies are merged.
	BiosDir string `mapstructure:"bios_dir" yaml:"bios_dir"`

	// PeopleDir is the subdirectory of Output that receives profile
	// documents and indexes.
	PeopleDir string `mapstructure:"people_dir" yaml:"people_dir"`

	// WithFamilies emits one document per family record in addition to
	// the per-person profiles.
	WithFamilies bool `mapstructure:"with_families" yaml:"with_families"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Site: SiteConfig{
			Output:    "site",
			PeopleDir: "People",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
