package store

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/crewcall-bot/crewcall/internal/store Store

import (
	"context"
	"errors"

	"github.com/crewcall-bot/crewcall/internal/models"
)

var (
	// ErrNotFound is returned by Load when no snapshot has ever been
	// saved. This is a normal first-run condition; callers initialize an
	// empty snapshot and persist it.
	ErrNotFound = errors.New("snapshot not found")

	// ErrCorrupt is returned by Load when a snapshot exists but cannot be
	// parsed. Callers must surface this, never substitute empty state.
	ErrCorrupt = errors.New("snapshot is corrupt")
)

// Store persists the full registry snapshot
type Store interface {
	// Load reads the snapshot from stable storage
	Load(ctx context.Context) (*models.Snapshot, error)

	// Save writes the snapshot. The write is atomic with respect to any
	// subsequent Load: a crashed or concurrent save never leaves a
	// partially-written snapshot visible.
	Save(ctx context.Context, input *SaveInput) error
}
