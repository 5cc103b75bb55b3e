package rules

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the rule specification when the rules file changes on
// disk. Rapid successive writes (editor save dances) are debounced into
// a single reload.
type Watcher struct {
	loader   *Loader
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a watcher for the rules file at path. A
// non-positive debounce defaults to 200ms.
func NewWatcher(loader *Loader, path string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	return &Watcher{
		loader:   loader,
		path:     path,
		debounce: debounce,
		logger:   slog.Default().With("component", "rules.watcher"),
	}
}

// Watch blocks until the context is cancelled, invoking onReload with
// the freshly loaded spec after each debounced change to the rules file.
// The parent directory is watched so create and rename of the file are
// observed too.
func (w *Watcher) Watch(ctx context.Context, onReload func(*Spec)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watch %q: %w", dir, err)
	}

	w.logger.Info("rules watcher started",
		"path", w.path,
		"debounce_ms", w.debounce.Milliseconds(),
	)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("rules watcher stopped")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)

		case <-pending:
			pending = nil
			spec := w.loader.Load()
			w.logger.Info("rules reloaded", "source", w.path)
			onReload(spec)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("rules watcher error", "error", err)
		}
	}
}
