// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestNew_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := New(Config{BaseDir: t.TempDir(), Patterns: []string{"[unterminated"}})
	if err == nil {
		t.Fatal("expected error for invalid glob pattern")
	}
}

func TestNew_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := New(Config{BaseDir: filepath.Join(t.TempDir(), "does-not-exist")})
	if err == nil {
		t.Fatal("expected error for missing base directory")
	}
}

func TestRun_SecondCallFails(t *testing.T) {
	t.Parallel()

	w, err := New(Config{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := w.Run(ctx); err == nil {
		t.Fatal("expected error from second Run call")
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	w, err := New(Config{BaseDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { w.fsw.Close() })

	if !w.matches("go.mod") {
		t.Error("default patterns should match go.mod")
	}
	if w.matches("go.sum") {
		t.Error("default patterns should not match go.sum")
	}
	if w.matches("main.go") {
		t.Error("default patterns should not match source files")
	}
}

func TestWatch_CoalescesRapidWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	manifest := filepath.Join(dir, "go.mod")
	if err := os.WriteFile(manifest, []byte("module example.com/x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var (
		mu    sync.Mutex
		calls [][]string
	)
	fired := make(chan struct{}, 8)

	w, err := New(Config{
		BaseDir:  dir,
		Debounce: 50 * time.Millisecond,
		OnChange: func(_ context.Context, changed []string) error {
			mu.Lock()
			calls = append(calls, changed)
			mu.Unlock()
			fired <- struct{}{}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Two rapid writes, as an editor save would produce.
	for range 2 {
		if err := os.WriteFile(manifest, []byte("module example.com/x\n\ngo 1.25\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for debounced callback")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("expected 1 coalesced callback, got %d", len(calls))
	}
	if len(calls[0]) != 1 || calls[0][0] != "go.mod" {
		t.Errorf("changed = %v, want [go.mod]", calls[0])
	}
}

func TestWatch_IgnoresUnmatchedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := New(Config{
		BaseDir:  dir,
		Debounce: 30 * time.Millisecond,
		OnChange: func(context.Context, []string) error {
			fired <- struct{}{}
			return nil
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("callback fired for a file outside the watch patterns")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
}
