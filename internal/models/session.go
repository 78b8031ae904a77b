package models

import (
	"time"
)

// SessionStatus represents the current state of a lobby session
type SessionStatus string

const (
	// SessionStatusActive indicates a session is open and joinable
	SessionStatusActive SessionStatus = "active"

	// SessionStatusArchived indicates a session has ended; terminal
	SessionStatusArchived SessionStatus = "archived"
)

// Session represents one game lobby, identified by its join code
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Code is the short join code, unique among active sessions in the guild
	Code string `json:"code"`

	// GuildID is the Discord server this session belongs to
	GuildID string `json:"guild_id"`

	// CreatedBy is the user ID who created the session
	CreatedBy string `json:"created_by"`

	// Status is the current state of the session
	Status SessionStatus `json:"status"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// Participants are the users in the session, in join order
	Participants []*Participant `json:"participants"`
}

// Participant returns the participant with the given user ID, or nil
func (s *Session) Participant(userID string) *Participant {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Participants = make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		clone.Participants = append(clone.Participants, p.Clone())
	}

	return &clone
}

// ArchivedSession is the summary kept after a session ends
type ArchivedSession struct {
	// Code is the join code the session had while active
	Code string `json:"code"`

	// CreatedBy is the user ID who created the session
	CreatedBy string `json:"created_by"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// ArchivedAt is when the session was archived
	ArchivedAt time.Time `json:"archived_at"`

	// ParticipantCount is how many users were in the session when it ended
	ParticipantCount int `json:"participant_count"`
}

// Clone returns a copy of the archived session summary
func (a *ArchivedSession) Clone() *ArchivedSession {
	if a == nil {
		return nil
	}

	clone := *a
	return &clone
}
