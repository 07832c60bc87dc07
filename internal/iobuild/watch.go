package iobuild

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gnames/gn"
)

// debounceDelay batches the event bursts genealogy programs produce
// when they save a file.
const debounceDelay = 400 * time.Millisecond

// Watch runs Build once, then watches the source file and the
// biography directory and rebuilds on change until the context is
// cancelled. A failed rebuild is reported and watching continues;
// the next save gets another chance.
func (b *builder) Watch(ctx context.Context) error {
	if err := b.Build(ctx); err != nil {
		gn.PrintErrorMessage(err)
		slog.Error("Initial build failed", "error", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return WatchError(err)
	}
	defer w.Close()

	// Watch the source file's directory rather than the file itself:
	// editors and genealogy programs replace files on save, which
	// silently drops a file-level watch.
	if err = w.Add(filepath.Dir(b.cfg.Source)); err != nil {
		return WatchError(err)
	}
	if dir := b.cfg.Site.BiosDir; dir != "" {
		if _, statErr := os.Stat(dir); statErr == nil {
			if err = w.Add(dir); err != nil {
				return WatchError(err)
			}
		}
	}

	gn.Info("Watching <em>%s</em> for changes, Ctrl-C to stop", b.cfg.Source)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if b.relevantEvent(ev) {
				debounce = time.After(debounceDelay)
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", werr)
		case <-debounce:
			debounce = nil
			slog.Info("Change detected, rebuilding")
			if err := b.Build(ctx); err != nil {
				gn.PrintErrorMessage(err)
				slog.Error("Rebuild failed", "error", err)
			}
		}
	}
}

// relevantEvent reports whether the event touches the source file or
// a biography file.
func (b *builder) relevantEvent(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
		return false
	}
	if sameFile(ev.Name, b.cfg.Source) {
		return true
	}
	dir := b.cfg.Site.BiosDir
	return dir != "" && filepath.Dir(ev.Name) == filepath.Clean(dir)
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
