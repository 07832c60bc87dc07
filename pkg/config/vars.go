package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gedsite"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gedsite by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gedsite/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gedsite/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// PlacesFilePath returns the full path to the places.yaml file.
// Returns ~/.config/gedsite/places.yaml by default.
func PlacesFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "places.yaml")
}
