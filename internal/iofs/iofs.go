package iofs

import (
	_ "embed"
	"os"

	"github.com/gedtree/gedsite/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

//go:embed places.yaml
var PlacesYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

func EnsurePlacesFile(homeDir string) error {
	placesPath := config.PlacesFilePath(homeDir)

	// Check if places file already exists
	if _, err := os.Stat(placesPath); err == nil {
		return nil
	}

	// Write embedded places.yaml to the config directory
	if err := os.WriteFile(placesPath, []byte(PlacesYAML), 0644); err != nil {
		return CopyFileError(placesPath, err)
	}

	return nil
}
