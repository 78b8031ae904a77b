package registry

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/crewcall-bot/crewcall/internal/registry Service

import "context"

// Service defines the interface for lobby registry operations. Every
// mutating operation persists the snapshot before reporting success.
type Service interface {
	// CreateSession opens a new lobby with a fresh join code
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a user to an active lobby by code. Joining a lobby
	// the user is already in is a no-op, not an error.
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// ArchiveSession ends an active lobby; its code becomes reusable
	ArchiveSession(ctx context.Context, input *ArchiveSessionInput) (*ArchiveSessionOutput, error)

	// GetSummary folds the snapshot into aggregate statistics. Pure read.
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// SaveSnapshot persists the current state on demand
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error)

	// Reload discards in-memory state and re-reads from the store
	Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error)

	// Clear resets the registry to an empty snapshot. Irreversible.
	Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error)
}
