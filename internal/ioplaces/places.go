// Package ioplaces loads the places.yaml mapping from the config
// directory.
package ioplaces

import (
	"os"

	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/places"
	"gopkg.in/yaml.v3"
)

type ioplaces struct {
	cfg *config.Config
}

func New(cfg *config.Config) places.Places {
	res := ioplaces{cfg: cfg}
	return &res
}

// Load reads places.yaml from the config directory. A missing file is
// not an error: place links simply get no curated overrides.
func (p *ioplaces) Load() (*places.PlacesConfig, error) {
	placesPath := config.PlacesFilePath(p.cfg.HomeDir)

	data, err := os.ReadFile(placesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &places.PlacesConfig{}, nil
		}
		return nil, PlacesConfigError(placesPath, err)
	}

	var res places.PlacesConfig
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, PlacesConfigError(placesPath, err)
	}

	return &res, nil
}
