package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSiteOutput sets the directory the documents are written into.
func OptSiteOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Site Output", s) {
			c.Site.Output = s
		}
	}
}

// OptSiteBiosDir sets the directory with per-person biography files.
// Empty is a valid value: biographies are optional.
func OptSiteBiosDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Site.BiosDir = s
	}
}

// OptSitePeopleDir sets the subdirectory of the output that receives
// profile documents.
func OptSitePeopleDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Site People Dir", s) {
			c.Site.PeopleDir = s
		}
	}
}

// OptSiteWithFamilies sets whether one document per family record is
// emitted in addition to the per-person profiles.
func OptSiteWithFamilies(b bool) Option {
	return func(c *Config) {
		c.Site.WithFamilies = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for document
// emission. Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptSource sets the GEDCOM file to process.
// Runtime-only field - not in ToOptions().
func OptSource(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Source", s) {
			c.Source = s
		}
	}
}

// OptWatch sets whether the build command keeps running and rebuilds
// on source changes.
// Runtime-only field - not in ToOptions().
func OptWatch(b bool) Option {
	return func(c *Config) {
		c.Watch = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
