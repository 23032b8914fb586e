package backend

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/atomicstack/listpager/internal/source"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatal("events channel closed early")
		}
		return evt
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}
	return Event{}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("alpha\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	w := NewWatcher(path, 10*time.Millisecond, nil)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	evt := nextEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error: %v", evt.Err)
	}
	if len(evt.Entries) != 3 || evt.Entries[2].Text != "gamma" {
		t.Fatalf("unexpected entries %+v", evt.Entries)
	}
}

func TestWatcherReportsLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("alpha\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	boom := errors.New("boom")
	w := NewWatcher(path, 10*time.Millisecond, func(string) ([]*source.Entry, error) {
		return nil, boom
	})
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if evt := nextEvent(t, w); !errors.Is(evt.Err, boom) {
		t.Fatalf("expected load error, got %v", evt.Err)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing.txt"), 10*time.Millisecond, nil)
	w.Stop()
	w.Wait()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatal("expected no events after stop")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestThrottleWaitHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if !th.wait(ctx) {
		t.Fatal("expected first wait to pass immediately")
	}
	cancel()
	if th.wait(ctx) {
		t.Fatal("expected cancelled wait to fail")
	}
}
