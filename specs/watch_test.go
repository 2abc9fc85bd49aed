package specs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitReload(t *testing.T, w *Watcher) bool {
	t.Helper()
	select {
	case <-w.Reload:
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestWatcherSignalsOnSpecChange(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("lives: 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !waitReload(t, w) {
		t.Fatal("no reload signal after a spec write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "sheet.png"), []byte{0}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	select {
	case <-w.Reload:
		t.Fatal("reload signal for a non-spec file")
	default:
	}
}

func TestWatcherSkipsMissingDirs(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "missing"), dir)
	if err != nil {
		t.Fatalf("NewWatcher with one good dir: %v", err)
	}
	w.Close()

	if _, err := NewWatcher(filepath.Join(dir, "also-missing")); err == nil {
		t.Fatal("expected an error with no watchable directories")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
