// Package watch reports changes to a fixed set of files using fsnotify.
// Parent directories are watched rather than the files themselves, so
// editors that save by rename-and-replace keep being observed.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/lvsparse/internal/logger"
)

type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]struct{} // cleaned absolute paths
	log       *slog.Logger
	closeOnce sync.Once
}

// New watches paths and calls onChange with the sorted set of changed
// paths after window of quiet. onChange runs on a timer goroutine.
func New(paths []string, window time.Duration, onChange func([]string)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		debouncer: NewDebouncer(window, onChange),
		files:     make(map[string]struct{}, len(paths)),
		log:       logger.ForComponent("watch"),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch: %s: %w", dir, err)
		}
		w.log.Debug("watching directory", "path", dir)
	}

	return w, nil
}

// Run forwards relevant events to the debouncer until ctx is done or the
// watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, tracked := w.files[name]; !tracked {
				continue
			}
			w.log.Debug("file event", "path", name, "op", event.Op.String())
			w.debouncer.Add(name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.debouncer.Stop()
		err = w.fsWatcher.Close()
	})

	return err
}
