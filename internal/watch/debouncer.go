package watch

import (
	"sort"
	"sync"
	"time"
)

// Debouncer coalesces bursts of change notifications per path and flushes
// them once no new change arrived for window. Flushes never overlap: a
// change recorded while onFlush runs is delivered in a later flush.
type Debouncer struct {
	window  time.Duration
	paths   map[string]struct{}
	mu      sync.Mutex
	flushMu sync.Mutex // held for the whole of a flush, callback included
	timer   *time.Timer
	onFlush func([]string)
	stopped bool
}

func NewDebouncer(window time.Duration, onFlush func([]string)) *Debouncer {
	return &Debouncer{
		window:  window,
		paths:   make(map[string]struct{}),
		onFlush: onFlush,
	}
}

// Add records a change of path and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.paths[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.flushMu.Lock()
	defer d.flushMu.Unlock()

	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.flushLocked()
}

// flushLocked drains pending paths and releases d.mu before the callback.
// Callers hold d.flushMu.
func (d *Debouncer) flushLocked() {
	paths := make([]string, 0, len(d.paths))
	for p := range d.paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	d.paths = make(map[string]struct{})

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.mu.Unlock()

	if len(paths) > 0 && d.onFlush != nil {
		d.onFlush(paths)
	}
}

// Stop cancels the pending timer and drops pending paths.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.paths = make(map[string]struct{})
}
