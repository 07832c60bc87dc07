package ioemit

import (
	"os"
	"path/filepath"
	"strings"
)

// indexEntry is one profile's row in the index pages.
type indexEntry struct {
	ID     string
	Title  string
	HasBio bool
}

// writeIndexes writes People/index.md listing every profile and
// People/bios.md listing the profiles that carry a biography. Entries
// arrive sorted by title, then id.
func (e *Emitter) writeIndexes(peopleDir string, entries []indexEntry) error {
	lines := []string{"# People", ""}
	for _, en := range entries {
		lines = append(lines, "- "+wikiLink(en.ID, en.Title))
	}
	path := filepath.Join(peopleDir, "index.md")
	if err := writeLines(path, lines); err != nil {
		return err
	}

	lines = []string{
		"# Biographies",
		"",
		"This page lists all family members who have biographical information.",
		"",
	}
	withBios := 0
	for _, en := range entries {
		if en.HasBio {
			lines = append(lines, "- "+wikiLink(en.ID, en.Title))
			withBios++
		}
	}
	if withBios == 0 {
		lines = append(lines, "*No biographical information available yet.*")
	}
	path = filepath.Join(peopleDir, "bios.md")
	return writeLines(path, lines)
}

func writeLines(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return WriteError(path, err)
	}
	return nil
}
