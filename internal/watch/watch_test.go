package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func newCounting(t *testing.T, path string, opts ...Option) (*Watcher, *atomic.Int32) {
	t.Helper()
	var count atomic.Int32
	w, err := New(path, func() error {
		count.Add(1)
		return nil
	}, opts...)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	return w, &count
}

func TestWatcherDetectsFileChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(50*time.Millisecond))
	w.Start()
	defer w.Stop()
	time.Sleep(50 * time.Millisecond)

	writeFile(t, path, `{"hero_title_color": "#fff"}`)

	if !waitFor(time.Second, func() bool { return count.Load() == 1 }) {
		t.Errorf("expected 1 change, got %d", count.Load())
	}
}

func TestWatcherDebouncesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(100*time.Millisecond))
	w.Start()
	defer w.Stop()
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 5; i++ {
		writeFile(t, path, `{"n": "`+string(rune('0'+i))+`"}`)
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(300 * time.Millisecond)

	if got := count.Load(); got != 1 {
		t.Errorf("expected 1 debounced change, got %d", got)
	}
}

func TestWatcherStopPreventsCallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(50*time.Millisecond))
	w.Start()
	time.Sleep(50 * time.Millisecond)
	w.Stop()
	w.Stop()

	writeFile(t, path, `{"a": "b"}`)
	time.Sleep(200 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("expected 0 changes after stop, got %d", got)
	}
}

func TestWatcherRestartAfterStop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(50*time.Millisecond))
	w.Start()
	w.Stop()
	w.Start()
	w.Stop()

	writeFile(t, path, `{"a": "b"}`)
	time.Sleep(200 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("expected 0 changes after restart on a stopped watcher, got %d", got)
	}
}

func TestWatcherStopWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path)
	w.Stop()
	w.Start()
	w.Stop()

	if got := count.Load(); got != 0 {
		t.Errorf("expected 0 changes, got %d", got)
	}
}

func TestWatcherHandlesAtomicSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(50*time.Millisecond))
	w.Start()
	defer w.Stop()
	time.Sleep(50 * time.Millisecond)

	tmp := filepath.Join(dir, ".content.json.tmp")
	writeFile(t, tmp, `{"saved": "atomically"}`)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	if !waitFor(time.Second, func() bool { return count.Load() >= 1 }) {
		t.Error("atomic save not detected")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.json")
	writeFile(t, path, `{}`)

	w, count := newCounting(t, path, WithDebounce(50*time.Millisecond))
	w.Start()
	defer w.Stop()
	time.Sleep(50 * time.Millisecond)

	writeFile(t, filepath.Join(dir, "other.json"), `{}`)
	time.Sleep(200 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("expected 0 changes for other file, got %d", got)
	}
}

func TestWatcherReportsCallbackErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	failure := errors.New("normalize failed")
	var received atomic.Value
	w, err := New(path,
		func() error { return failure },
		WithDebounce(50*time.Millisecond),
		WithErrorHandler(func(err error) { received.Store(err) }),
	)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	w.Start()
	defer w.Stop()
	time.Sleep(50 * time.Millisecond)

	writeFile(t, path, `{"x": "y"}`)

	if !waitFor(time.Second, func() bool { return received.Load() != nil }) {
		t.Fatal("error handler not called")
	}
	if got := received.Load().(error); !errors.Is(got, failure) {
		t.Errorf("received %v, want %v", got, failure)
	}
}

func TestWatcherRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	writeFile(t, path, `{}`)

	w, _ := newCounting(t, path)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing", "content.json"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
