// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// debouncer coalesces paths and hands them to fire once no new path has
// arrived for delay. fire is never entered concurrently.
type debouncer struct {
	delay time.Duration
	fire  func(changed []string)

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	stopped bool

	running atomic.Bool
}

func newDebouncer(delay time.Duration, fire func([]string)) *debouncer {
	return &debouncer{delay: delay, fire: fire, pending: make(map[string]struct{})}
}

// add records path and restarts the quiet period.
func (d *debouncer) add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending[path] = struct{}{}
	d.scheduleLocked()
}

func (d *debouncer) scheduleLocked() {
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.flush)
		return
	}
	d.timer.Reset(d.delay)
}

func (d *debouncer) flush() {
	if !d.running.CompareAndSwap(false, true) {
		// Busy: keep the pending set and try again after another quiet period.
		slog.Debug("previous benchmark run still in progress, deferring re-run")
		d.mu.Lock()
		if !d.stopped {
			d.scheduleLocked()
		}
		d.mu.Unlock()
		return
	}
	defer d.running.Store(false)

	d.mu.Lock()
	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	changed := slices.Sorted(maps.Keys(d.pending))
	clear(d.pending)
	d.mu.Unlock()

	d.fire(changed)
}

// stop cancels any scheduled flush. A flush already running is not interrupted.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
