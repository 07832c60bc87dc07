package ioplaces_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gedtree/gedsite/internal/ioplaces"
	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})
	return cfg
}

func writePlaces(t *testing.T, cfg *config.Config, data string) {
	t.Helper()
	path := config.PlacesFilePath(cfg.HomeDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func TestLoad(t *testing.T) {
	cfg := newConfig(t)
	writePlaces(t, cfg, `articles:
  "Perth, WA, Australia": Perth
  "Boston, Massachusetts": Boston
`)

	pc, err := ioplaces.New(cfg).Load()
	require.NoError(t, err)
	require.NotNil(t, pc)
	assert.Len(t, pc.Articles, 2)
	assert.Equal(t, "Perth", pc.Articles["Perth, WA, Australia"])
}

func TestLoadMissingFile(t *testing.T) {
	cfg := newConfig(t)

	pc, err := ioplaces.New(cfg).Load()
	require.NoError(t, err, "missing places.yaml is not an error")
	require.NotNil(t, pc)
	assert.Empty(t, pc.Articles)
}

func TestLoadBadYAML(t *testing.T) {
	cfg := newConfig(t)
	writePlaces(t, cfg, "articles: [not: a: map\n")

	_, err := ioplaces.New(cfg).Load()
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.PlacesConfigError, gnErr.Code)
}
