// Package ioemit renders the document set: one markdown profile per
// individual, optional family documents, and the index pages.
//
// Rendering is deterministic: individuals are processed from a sorted
// id list, relationship lists preserve the source order of the family
// records, and frontmatter is a struct marshal. Re-running on an
// unchanged graph produces byte-identical files, which keeps the
// downstream site's content index stable across rebuilds.
package ioemit

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/gedgraph"
	"github.com/gedtree/gedsite/pkg/gedsite"
	"github.com/gedtree/gedsite/pkg/places"
	"golang.org/x/sync/errgroup"

	"log/slog"
)

// Stats summarizes one emission run.
type Stats struct {
	Individuals int
	Families    int
	Biographies int
	Warnings    int
}

// Emitter writes the document set for one resolved graph.
type Emitter struct {
	cfg    *config.Config
	graph  *gedgraph.Graph
	bios   gedsite.BiographyStore
	places *places.PlacesConfig
}

// New creates an Emitter. The graph and the biography store are
// shared read-only between emission workers.
func New(
	cfg *config.Config,
	graph *gedgraph.Graph,
	bios gedsite.BiographyStore,
	pl *places.PlacesConfig,
) *Emitter {
	return &Emitter{cfg: cfg, graph: graph, bios: bios, places: pl}
}

// Emit writes every document. Profile documents are rendered in
// parallel across individuals; each depends only on the read-only
// graph and its own biography lookup, so the only synchronization is
// the shared result collection and the join before the indexes are
// written. Write failures abort the run; biography problems are
// per-person warnings.
func (e *Emitter) Emit(ctx context.Context) (Stats, error) {
	var stats Stats

	peopleDir := filepath.Join(e.cfg.Site.Output, e.cfg.Site.PeopleDir)
	if err := os.MkdirAll(peopleDir, 0755); err != nil {
		return stats, WriteError(peopleDir, err)
	}

	ids := e.graph.IndividualIDs()
	bar := newProgressBar(len(ids), "Profiles")
	defer bar.Finish()

	var mu sync.Mutex
	entries := make([]indexEntry, 0, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.JobsNumber)

	for _, id := range ids {
		g.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
			}

			ind := e.graph.Individuals[id]
			doc, hasBio, warn := e.renderProfile(ind)
			if warn != nil {
				slog.Warn("Profile rendered without biography",
					"id", id, "reason", warn)
			}

			path := filepath.Join(peopleDir, id+".md")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				return WriteError(path, err)
			}

			mu.Lock()
			entries = append(entries, indexEntry{
				ID:     id,
				Title:  ind.DisplayName(),
				HasBio: hasBio,
			})
			if hasBio {
				stats.Biographies++
			}
			if warn != nil {
				stats.Warnings++
			}
			mu.Unlock()

			bar.Increment()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return stats, err
	}
	stats.Individuals = len(entries)

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Title != entries[j].Title {
			return entries[i].Title < entries[j].Title
		}
		return entries[i].ID < entries[j].ID
	})
	if err := e.writeIndexes(peopleDir, entries); err != nil {
		return stats, err
	}

	if e.cfg.Site.WithFamilies {
		count, err := e.emitFamilies()
		if err != nil {
			return stats, err
		}
		stats.Families = count
	}

	return stats, nil
}

// emitFamilies writes one document per family record into the
// Families subdirectory. Family sets are small; no fan-out needed.
func (e *Emitter) emitFamilies() (int, error) {
	famDir := filepath.Join(e.cfg.Site.Output, "Families")
	if err := os.MkdirAll(famDir, 0755); err != nil {
		return 0, WriteError(famDir, err)
	}

	count := 0
	for _, id := range e.graph.FamilyIDs() {
		doc := e.renderFamily(e.graph.Families[id])
		path := filepath.Join(famDir, id+".md")
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return count, WriteError(path, err)
		}
		count++
	}
	return count, nil
}
