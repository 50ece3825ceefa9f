// Package watch re-runs a check whenever the chapter file changes on disk.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce collapses the burst of events editors fire per save.
const debounce = 200 * time.Millisecond

// Watcher invokes a run function after each debounced change to one file.
type Watcher struct {
	path   string
	run    func()
	logger *zap.Logger
}

// New creates a watcher for path. run is invoked on the watcher's goroutine.
func New(path string, run func(), logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{path: path, run: run, logger: logger}
}

// Watch blocks until ctx is cancelled, invoking the run function after each
// debounced change. The parent directory is watched rather than the file
// itself: editors that replace the file on save would otherwise drop the
// watch.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	base := filepath.Base(w.path)

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.logger.Debug("chapter changed, re-checking", zap.String("path", w.path))
			w.run()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}
