// Package gedsite defines the interfaces of the document pipeline.
// Implementations that touch the file system live under internal/io*.
package gedsite

import (
	"context"
)

var (
	// Version is set by the build via ldflags.
	Version = "v0.1.0"
	// Build is a timestamp set by the build via ldflags.
	Build = "n/a"
)

// Builder runs the whole pipeline: parse the GEDCOM source, resolve
// the graph, merge biographies and emit the document set.
type Builder interface {
	// Build runs the pipeline once. Parse-time and resolve-time errors
	// abort before any document is written; per-person rendering
	// problems surface as warnings and do not stop the run.
	Build(ctx context.Context) error

	// Watch runs Build once, then reruns it whenever the source file
	// or the biography directory change, until the context is
	// cancelled.
	Watch(ctx context.Context) error
}

// BiographyStore looks up optional free-text biographies.
type BiographyStore interface {
	// Lookup returns the biography text for an individual, searching
	// by record id first, then by the normalized name slug. The id
	// match strictly wins. The empty string means no biography exists,
	// which is not an error. An ambiguous slug match or an unreadable
	// file is returned as an error the caller should treat as a
	// per-person warning.
	Lookup(id, nameSlug string) (string, error)
}
