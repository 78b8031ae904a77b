package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crewcall-bot/crewcall/internal/models"
)

// FileConfig holds configuration for the file-backed store
type FileConfig struct {
	// Path is where the snapshot document lives
	Path string
}

// fileStore implements the Store interface as a single JSON document on disk
type fileStore struct {
	path string
}

// NewFile creates a new file-backed snapshot store
func NewFile(cfg *FileConfig) (*fileStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	return &fileStore{
		path: cfg.Path,
	}, nil
}

// Load reads and parses the snapshot document
func (s *fileStore) Load(ctx context.Context) (*models.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot at %s: %w", s.path, err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}

	if snapshot.Version != models.SnapshotVersion {
		return nil, fmt.Errorf("%w: %s: unsupported version %d", ErrCorrupt, s.path, snapshot.Version)
	}

	if snapshot.Communities == nil {
		snapshot.Communities = make(map[string]*models.Community)
	}

	return &snapshot, nil
}

// Save writes the snapshot to a temporary file and atomically replaces the
// document. Creates the parent directory if absent, so a fresh install
// needs no setup step.
func (s *fileStore) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Snapshot == nil {
		return errors.New("input and snapshot cannot be nil")
	}

	data, err := json.Marshal(input.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
