// Package backend watches an item source on disk and publishes fresh loads.
package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/listpager/internal/source"
)

// Event conveys a reloaded item list or the error that prevented the load.
type Event struct {
	Entries []*source.Entry
	Err     error
}

// Loader reads the entries at path.
type Loader func(path string) ([]*source.Entry, error)

// Watcher polls a file at a fixed interval and publishes an Event whenever
// its size or modification time changes.
type Watcher struct {
	path     string
	interval time.Duration
	load     Loader
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. The file's current state is the baseline,
// so the first event follows the first change.
func NewWatcher(path string, interval time.Duration, load Loader) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		load:     load,
		throttle: newThrottle(250 * time.Millisecond),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if w.load == nil {
		w.load = func(p string) ([]*source.Entry, error) { return source.Load(p, nil) }
	}

	w.wg.Add(1)
	go w.poll(stat(path))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events. It is closed once the watcher
// stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

type fileStamp struct {
	size    int64
	modTime time.Time
	missing bool
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{missing: true}
	}
	return fileStamp{size: info.Size(), modTime: info.ModTime()}
}

func (s fileStamp) same(o fileStamp) bool {
	return s.missing == o.missing && s.size == o.size && s.modTime.Equal(o.modTime)
}

func (w *Watcher) poll(last fileStamp) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current := stat(w.path)
		if current.same(last) {
			continue
		}
		last = current
		if !w.throttle.wait(w.ctx) {
			return
		}
		entries, err := w.load(w.path)
		select {
		case <-w.ctx.Done():
			return
		case w.events <- Event{Entries: entries, Err: err}:
		}
	}
}

// throttle ensures a minimum interval between successive loads, so a file
// rewritten in several steps is not reloaded at every step.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next slot. It returns false if ctx ends first.
func (t *throttle) wait(ctx context.Context) bool {
	if t == nil || t.interval <= 0 {
		return ctx.Err() == nil
	}
	for {
		t.mu.Lock()
		wait := time.Until(t.next)
		if wait <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return true
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(wait):
		}
	}
}
