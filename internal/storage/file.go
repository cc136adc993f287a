package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
)

// FileStore reads and writes the persisted snapshot at a fixed path.
// It is the single storage entry for the whole application.
type FileStore struct {
	path string
}

// NewFileStore creates a file store, ensuring the parent directory
// exists.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: storage path cannot be empty", common.ErrMissingConfig)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the persisted snapshot.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the persisted snapshot. A missing or unreadable file, like
// a corrupt one, yields (nil, nil): the caller starts from factory
// defaults rather than failing at startup.
func (f *FileStore) Load() (*model.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("failed to read persisted state", "path", f.path, "error", err)
		return nil, nil
	}
	return Deserialize(data), nil
}

// Save serializes the snapshot and writes it atomically: the data goes
// to a temp file in the same directory which is then renamed over the
// previous state, so a crash mid-write never leaves a truncated file.
func (f *FileStore) Save(snap model.Snapshot) error {
	data, err := Serialize(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".mavit-cash-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}
