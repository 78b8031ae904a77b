package registry

import (
	"github.com/crewcall-bot/crewcall/internal/codegen"
	"github.com/crewcall-bot/crewcall/internal/common/clock"
	"github.com/crewcall-bot/crewcall/internal/common/uuid"
	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/store"
)

// Config holds configuration for the registry service
type Config struct {
	// Store persists the snapshot
	Store store.Store

	// Generator allocates join codes
	Generator codegen.Generator

	// Clock supplies timestamps
	Clock clock.Clock

	// UUIDGenerator supplies session identifiers
	UUIDGenerator uuid.UUID

	// Sink, if set, receives a best-effort lobby card DM for the creator
	// of each new session. Optional.
	Sink notify.Sink
}

// CreateSessionInput contains parameters for creating a new lobby
type CreateSessionInput struct {
	// GuildID is the Discord server the lobby belongs to
	GuildID string

	// CreatorID is the Discord user ID of the lobby creator
	CreatorID string

	// CreatorName is the display name of the lobby creator
	CreatorName string

	// Color is the crew color the creator picked
	Color string
}

// CreateSessionOutput contains the result of creating a lobby
type CreateSessionOutput struct {
	// Code is the join code for the new lobby
	Code string

	// Session is a view of the created lobby
	Session *models.Session
}

// JoinSessionInput contains parameters for joining a lobby
type JoinSessionInput struct {
	// GuildID is the Discord server the lobby belongs to
	GuildID string

	// Code is the join code
	Code string

	// UserID is the Discord user ID of the joining user
	UserID string

	// UserName is the display name of the joining user
	UserName string

	// Color is the crew color the user picked
	Color string
}

// JoinSessionOutput contains the result of joining a lobby
type JoinSessionOutput struct {
	// Session is a view of the lobby after the join
	Session *models.Session

	// AlreadyJoined indicates the user was already a participant
	AlreadyJoined bool
}

// ArchiveSessionInput contains parameters for archiving a lobby
type ArchiveSessionInput struct {
	// GuildID is the Discord server the lobby belongs to
	GuildID string

	// Code is the join code of the lobby to archive
	Code string
}

// ArchiveSessionOutput contains the result of archiving a lobby
type ArchiveSessionOutput struct {
	// Archived is the summary recorded for the ended lobby
	Archived *models.ArchivedSession
}

// GetSummaryInput contains parameters for the summary fold
type GetSummaryInput struct {
}

// CommunitySummary is the per-guild breakdown within a summary
type CommunitySummary struct {
	GuildID            string
	ActiveSessions     int
	ActiveParticipants int
	HistoricalSessions int
	TotalJoins         int
}

// GetSummaryOutput contains aggregate statistics over the whole snapshot
type GetSummaryOutput struct {
	// ActiveSessions is the number of active lobbies across all guilds
	ActiveSessions int

	// ActiveParticipants is the number of participants across active lobbies
	ActiveParticipants int

	// HistoricalSessions is the number of archived lobbies across all guilds
	HistoricalSessions int

	// Communities is the per-guild breakdown
	Communities []CommunitySummary
}

// SaveSnapshotInput contains parameters for a manual save
type SaveSnapshotInput struct {
}

// SaveSnapshotOutput contains the result of a manual save
type SaveSnapshotOutput struct {
}

// ReloadInput contains parameters for reloading state from the store
type ReloadInput struct {
}

// ReloadOutput contains the result of a reload
type ReloadOutput struct {
	// FirstRun indicates no snapshot existed and an empty one was
	// initialized and persisted
	FirstRun bool
}

// ClearInput contains parameters for clearing the registry
type ClearInput struct {
}

// ClearOutput contains the result of clearing the registry
type ClearOutput struct {
}
