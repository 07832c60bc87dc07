// Package iobios reads optional per-person biography files.
//
// Biographies live in a user-supplied directory as plain markdown
// files, named either by record id (I42.md) or by a normalized name
// slug (john-smith.md). The directory is indexed once; lookups after
// that touch the file system only to read a matched file.
package iobios

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gedtree/gedsite/pkg/gedsite"
)

type store struct {
	dir string

	// ids maps a file base name to its path; the id-keyed match.
	ids map[string]string
	// slugs maps a lowercased base name to every path carrying it;
	// the fallback match.
	slugs map[string][]string
}

// New indexes the biography directory. An empty path or a missing
// directory yields a store with no entries: biographies are optional
// and their absence is never an error.
func New(dir string) (gedsite.BiographyStore, error) {
	res := &store{
		dir:   dir,
		ids:   make(map[string]string),
		slugs: make(map[string][]string),
	}
	if dir == "" {
		return res, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return nil, BiographyDirError(dir, err)
	}

	// os.ReadDir sorts by name, so first-seen wins deterministically
	// when both I42.md and I42.MD exist.
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".md" {
			continue
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		path := filepath.Join(dir, name)

		if _, ok := res.ids[base]; !ok {
			res.ids[base] = path
		}
		key := strings.ToLower(base)
		res.slugs[key] = append(res.slugs[key], path)
	}

	return res, nil
}

// Lookup returns the biography text for an individual. The id-keyed
// file strictly wins over the name-slug fallback; more than one slug
// candidate is reported instead of guessing a merge order.
func (s *store) Lookup(id, nameSlug string) (string, error) {
	if path, ok := s.ids[id]; ok {
		return s.read(path)
	}

	if nameSlug == "" {
		return "", nil
	}
	paths := s.slugs[nameSlug]
	switch len(paths) {
	case 0:
		return "", nil
	case 1:
		return s.read(paths[0])
	default:
		return "", AmbiguousBiographyMatchError(nameSlug, paths)
	}
}

func (s *store) read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", BiographyReadError(path, err)
	}
	text := strings.ReplaceAll(string(data), "\r", "")
	return strings.TrimSpace(text), nil
}
