// Package iobuild orchestrates the pipeline: read the GEDCOM source,
// resolve the graph, and emit the document set.
package iobuild

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gedtree/gedsite/internal/iobios"
	"github.com/gedtree/gedsite/internal/ioemit"
	"github.com/gedtree/gedsite/internal/ioplaces"
	"github.com/gedtree/gedsite/pkg/config"
	"github.com/gedtree/gedsite/pkg/gedcom"
	"github.com/gedtree/gedsite/pkg/gedgraph"
	"github.com/gedtree/gedsite/pkg/gedsite"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// builder implements the Builder interface.
type builder struct {
	cfg *config.Config
}

// New creates a new Builder.
func New(cfg *config.Config) gedsite.Builder {
	return &builder{cfg: cfg}
}

// Build runs the pipeline once. All parsing and resolution happen
// before the first write, so a malformed source never leaves a
// partially linked document set behind.
func (b *builder) Build(ctx context.Context) error {
	startTime := time.Now()
	slog.Info("Starting site build", "source", b.cfg.Source)

	graph, err := LoadGraph(b.cfg)
	if err != nil {
		return err
	}
	slog.Info("Graph resolved",
		"individuals", len(graph.IndividualIDs()),
		"families", len(graph.FamilyIDs()),
	)

	bios, err := iobios.New(b.cfg.Site.BiosDir)
	if err != nil {
		return err
	}

	placesCfg, err := ioplaces.New(b.cfg).Load()
	if err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return CancelledError(ctx.Err())
	default:
	}

	stats, err := ioemit.New(b.cfg, graph, bios, placesCfg).Emit(ctx)
	if err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Build complete",
		"individuals", stats.Individuals,
		"families", stats.Families,
		"biographies", stats.Biographies,
		"warnings", stats.Warnings,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Build complete
Profiles: %s, biographies merged: %s, warnings: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(stats.Individuals)),
		humanize.Comma(int64(stats.Biographies)),
		humanize.Comma(int64(stats.Warnings)),
		gnfmt.TimeString(duration.Seconds()),
	)

	return nil
}

// LoadGraph parses the configured GEDCOM source into a resolved
// graph. It is also used on its own by commands that analyze the
// graph without emitting documents.
func LoadGraph(cfg *config.Config) (*gedgraph.Graph, error) {
	f, err := os.Open(cfg.Source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, SourceNotFoundError(cfg.Source, err)
		}
		return nil, SourceReadError(cfg.Source, err)
	}
	defer f.Close()

	roots, err := gedcom.Parse(f)
	if err != nil {
		return nil, err
	}

	return gedgraph.Build(roots)
}
