package stream

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the Watcher waits for writes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads the animation markup when the file changes and swaps the
// result into a Controller. A file that fails to load is logged and the
// current pattern keeps playing.
type Watcher struct {
	path       string
	debounce   time.Duration
	load       Loader
	controller *Controller
	log        *slog.Logger
}

// NewWatcher creates a Watcher for path.
func NewWatcher(path string, load Loader, controller *Controller, logger *slog.Logger) *Watcher {
	return &Watcher{
		path:       filepath.Clean(path),
		debounce:   DefaultDebounce,
		load:       load,
		controller: controller,
		log:        logger.With("component", "watcher", "path", path),
	}
}

// Run watches until ctx is cancelled. The parent directory is watched
// because editors often replace files instead of writing them in place.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			settle = time.After(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err)
		case <-settle:
			settle = nil
			w.Reload()
		}
	}
}

// Reload loads the file now and swaps it in on success.
func (w *Watcher) Reload() bool {
	p, err := w.load(w.path)
	if err != nil {
		reloads.WithLabelValues("error").Inc()
		w.log.Error("reload failed, keeping current animation", "error", err)
		return false
	}
	reloads.WithLabelValues("ok").Inc()
	w.controller.Swap(p)
	w.log.Info("animation reloaded")
	return true
}
