// Package filewatch reports changes to a single file without blocking. It
// watches the file's directory, since editors often save by replacing the
// file, and filters events down to the file itself.
package filewatch

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/automoto/pupu/logger"
)

type Watch struct {
	target string
	events <-chan fsnotify.Event
	errs   <-chan error
	closer io.Closer
}

// Start watches path for writes and re-creations.
func Start(path string) (*Watch, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &Watch{
		target: filepath.Clean(path),
		events: w.Events,
		errs:   w.Errors,
		closer: w,
	}, nil
}

// Active reports whether the watch can still deliver changes.
func (w *Watch) Active() bool {
	return w != nil && w.closer != nil
}

// Changed drains pending events and reports whether the file was written or
// re-created since the last call. If the watcher shut down on its own, the
// watch is closed and stays inactive.
func (w *Watch) Changed() bool {
	if !w.Active() {
		return false
	}
	changed := false
	for {
		select {
		case ev, ok := <-w.events:
			if !ok {
				w.Close()
				return changed
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				changed = true
			}
		case err, ok := <-w.errs:
			if !ok {
				w.Close()
				return changed
			}
			logger.Log.WithError(err).WithField("path", w.target).Warn("File watcher error")
		default:
			return changed
		}
	}
}

// Close releases the watcher. It is safe to call more than once.
func (w *Watch) Close() {
	if !w.Active() {
		return
	}
	if err := w.closer.Close(); err != nil {
		logger.Log.WithError(err).WithField("path", w.target).Warn("Could not close file watcher")
	}
	w.closer = nil
}
