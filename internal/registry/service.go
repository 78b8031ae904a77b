package registry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/crewcall-bot/crewcall/internal/codegen"
	"github.com/crewcall-bot/crewcall/internal/common/clock"
	"github.com/crewcall-bot/crewcall/internal/common/uuid"
	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/store"
)

// service implements the Service interface
type service struct {
	store     store.Store
	generator codegen.Generator
	clock     clock.Clock
	uuid      uuid.UUID
	sink      notify.Sink

	// mu serializes all snapshot mutation; reads take it shared. This is
	// the single-writer discipline that keeps two concurrent creates from
	// allocating the same code and keeps saves from racing reloads.
	mu       sync.RWMutex
	snapshot *models.Snapshot
}

// New creates a new registry service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Store == nil {
		return nil, ErrNilStore
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		store:     cfg.Store,
		generator: cfg.Generator,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		sink:      cfg.Sink,
		snapshot:  models.NewSnapshot(),
	}, nil
}

// CreateSession opens a new lobby with a fresh join code
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.GuildID == "" || input.CreatorID == "" {
		return nil, errors.New("input, guild ID and creator ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Codes are scoped per guild: collide only against this guild's
	// active codes.
	var existing map[string]struct{}
	if community := s.snapshot.Community(input.GuildID); community != nil {
		existing = community.ActiveCodes()
	}

	generated, err := s.generator.Generate(&codegen.GenerateInput{Existing: existing})
	if err != nil {
		if errors.Is(err, codegen.ErrCodeSpaceExhausted) {
			return nil, ErrCodeSpaceExhausted
		}
		return nil, err
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:        s.uuid.NewUUID(),
		Code:      generated.Code,
		GuildID:   input.GuildID,
		CreatedBy: input.CreatorID,
		Status:    models.SessionStatusActive,
		CreatedAt: now,
		Participants: []*models.Participant{
			{
				UserID:   input.CreatorID,
				Name:     input.CreatorName,
				Color:    input.Color,
				JoinedAt: now,
			},
		},
	}

	restore := s.snapshot.Clone()
	community := s.snapshot.EnsureCommunity(input.GuildID)
	community.Sessions[session.Code] = session
	community.TotalJoins++

	if err := s.persistLocked(ctx, restore); err != nil {
		return nil, err
	}

	s.notifyCreator(ctx, session)

	return &CreateSessionOutput{
		Code:    session.Code,
		Session: session.Clone(),
	}, nil
}

// JoinSession adds a user to an active lobby by code
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.GuildID == "" || input.UserID == "" {
		return nil, errors.New("input, guild ID and user ID cannot be empty")
	}

	code := normalizeCode(input.Code)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSessionLocked(input.GuildID, code)
	if err != nil {
		return nil, err
	}

	// Idempotent: an existing participant gets the current view back,
	// with no duplicate entry and no save.
	if session.Participant(input.UserID) != nil {
		return &JoinSessionOutput{
			Session:       session.Clone(),
			AlreadyJoined: true,
		}, nil
	}

	restore := s.snapshot.Clone()
	session.Participants = append(session.Participants, &models.Participant{
		UserID:   input.UserID,
		Name:     input.UserName,
		Color:    input.Color,
		JoinedAt: s.clock.Now(),
	})
	s.snapshot.Communities[input.GuildID].TotalJoins++

	if err := s.persistLocked(ctx, restore); err != nil {
		return nil, err
	}

	return &JoinSessionOutput{
		Session: session.Clone(),
	}, nil
}

// ArchiveSession ends an active lobby and records its summary
func (s *service) ArchiveSession(ctx context.Context, input *ArchiveSessionInput) (*ArchiveSessionOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	code := normalizeCode(input.Code)

	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.activeSessionLocked(input.GuildID, code)
	if err != nil {
		return nil, err
	}

	restore := s.snapshot.Clone()

	archived := &models.ArchivedSession{
		Code:             session.Code,
		CreatedBy:        session.CreatedBy,
		CreatedAt:        session.CreatedAt,
		ArchivedAt:       s.clock.Now(),
		ParticipantCount: len(session.Participants),
	}

	community := s.snapshot.Communities[input.GuildID]
	delete(community.Sessions, code)
	community.Archived = append(community.Archived, archived)
	session.Status = models.SessionStatusArchived

	if err := s.persistLocked(ctx, restore); err != nil {
		return nil, err
	}

	return &ArchiveSessionOutput{
		Archived: archived.Clone(),
	}, nil
}

// GetSummary folds the snapshot into aggregate statistics
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	output := &GetSummaryOutput{}

	for guildID, community := range s.snapshot.Communities {
		cs := CommunitySummary{
			GuildID:            guildID,
			ActiveSessions:     len(community.Sessions),
			HistoricalSessions: len(community.Archived),
			TotalJoins:         community.TotalJoins,
		}
		for _, session := range community.Sessions {
			cs.ActiveParticipants += len(session.Participants)
		}

		output.ActiveSessions += cs.ActiveSessions
		output.ActiveParticipants += cs.ActiveParticipants
		output.HistoricalSessions += cs.HistoricalSessions
		output.Communities = append(output.Communities, cs)
	}

	return output, nil
}

// SaveSnapshot persists the current state on demand
func (s *service) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) (*SaveSnapshotOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(ctx, &store.SaveInput{Snapshot: s.snapshot}); err != nil {
		return nil, fmt.Errorf("failed to persist snapshot: %w", err)
	}

	return &SaveSnapshotOutput{}, nil
}

// Reload discards in-memory state and re-reads from the store. A missing
// snapshot is a fresh install: initialize empty and persist. A corrupt
// snapshot propagates untouched; guessing at state is worse than stopping.
func (s *service) Reload(ctx context.Context, input *ReloadInput) (*ReloadOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			empty := models.NewSnapshot()
			if err := s.store.Save(ctx, &store.SaveInput{Snapshot: empty}); err != nil {
				return nil, fmt.Errorf("failed to persist initial snapshot: %w", err)
			}
			s.snapshot = empty
			return &ReloadOutput{FirstRun: true}, nil
		}
		return nil, err
	}

	s.snapshot = snapshot
	return &ReloadOutput{}, nil
}

// Clear resets the registry to an empty snapshot and persists it
func (s *service) Clear(ctx context.Context, input *ClearInput) (*ClearOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restore := s.snapshot
	s.snapshot = models.NewSnapshot()

	if err := s.persistLocked(ctx, restore); err != nil {
		return nil, err
	}

	return &ClearOutput{}, nil
}

// activeSessionLocked looks up an active session by guild and code.
// Caller holds mu.
func (s *service) activeSessionLocked(guildID, code string) (*models.Session, error) {
	community := s.snapshot.Community(guildID)
	if community == nil {
		return nil, ErrSessionNotFound
	}

	session, ok := community.Sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// persistLocked saves the snapshot, rolling the in-memory state back to
// restore on failure so memory never diverges from a reported failure.
// Caller holds mu.
func (s *service) persistLocked(ctx context.Context, restore *models.Snapshot) error {
	if err := s.store.Save(ctx, &store.SaveInput{Snapshot: s.snapshot}); err != nil {
		s.snapshot = restore
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// notifyCreator DMs the lobby card to the session creator. Best effort:
// the session is already persisted, so a delivery failure is logged and
// never surfaced as an operation failure.
func (s *service) notifyCreator(ctx context.Context, session *models.Session) {
	if s.sink == nil {
		return
	}

	err := s.sink.NotifyUser(ctx, &notify.NotifyUserInput{
		UserID: session.CreatedBy,
		Card: &notify.Card{
			Title:       "Lobby created",
			Description: fmt.Sprintf("Your join code is **%s**", session.Code),
			Color:       0x00ff00,
		},
	})
	if err != nil {
		log.Printf("Failed to DM lobby card for session %s: %v", session.ID, err)
	}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
