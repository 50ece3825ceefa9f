package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchInvokesRunOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chapter.qmd")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ran := make(chan struct{}, 4)
	w := New(path, func() { ran <- struct{}{} }, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	// Give the watcher time to register before the write.
	time.Sleep(250 * time.Millisecond)
	if err := os.WriteFile(path, []byte("v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("run was not invoked after a chapter change")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Watch returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancellation")
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chapter.qmd")
	if err := os.WriteFile(path, []byte("v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ran := make(chan struct{}, 4)
	w := New(path, func() { ran <- struct{}{} }, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	time.Sleep(250 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "other.qmd"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-ran:
		t.Fatal("run invoked for a sibling file change")
	case <-time.After(600 * time.Millisecond):
	}

	cancel()
	<-done
}
