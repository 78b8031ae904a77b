package models

import (
	"time"
)

// Participant represents a user who has joined a lobby session
type Participant struct {
	// UserID is the Discord user ID of the participant
	UserID string `json:"user_id"`

	// Name is the display name of the participant
	Name string `json:"name"`

	// Color is the crew color the participant picked when joining
	Color string `json:"color"`

	// JoinedAt is when the participant joined the session
	JoinedAt time.Time `json:"joined_at"`
}

// Clone returns a deep copy of the participant
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}

	clone := *p
	return &clone
}
