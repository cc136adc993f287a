package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mavit/mavit-cash/internal/common"
)

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "mavit-cash.json")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	original := fullSnapshot()
	if err := fs.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	restored, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if restored == nil {
		t.Fatal("Load returned nil for saved state")
	}
	if restored.User == nil || restored.User.Name != original.User.Name {
		t.Errorf("user not round-tripped: %+v", restored.User)
	}
	if len(restored.Expenses) != len(original.Expenses) {
		t.Errorf("expense count drifted: %d != %d", len(restored.Expenses), len(original.Expenses))
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if snap != nil {
		t.Errorf("missing file should yield nil state, got %+v", snap)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mavit-cash.json")
	if err := os.WriteFile(path, []byte("{ corrupted"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("corrupt file should not error, got %v", err)
	}
	if snap != nil {
		t.Errorf("corrupt file should yield nil state, got %+v", snap)
	}
}

func TestFileStore_SaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mavit-cash.json")
	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}

	if err := fs.Save(fullSnapshot()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second := fullSnapshot()
	second.User.Name = "Beatriz"
	if err := fs.Save(second); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	restored, err := fs.Load()
	if err != nil || restored == nil {
		t.Fatalf("Load failed after overwrite: %v", err)
	}
	if restored.User.Name != "Beatriz" {
		t.Errorf("stale state survived overwrite: %q", restored.User.Name)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the state file in %s, found %d entries", dir, len(entries))
	}
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	if err == nil {
		t.Fatal("expected an error for an empty path")
	}
	if !errors.Is(err, common.ErrMissingConfig) {
		t.Errorf("expected ErrMissingConfig, got %v", err)
	}
}
