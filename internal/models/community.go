package models

// Community holds all lobby state for one Discord guild
type Community struct {
	// GuildID is the Discord server this community represents
	GuildID string `json:"guild_id"`

	// Sessions maps join code to active session. Archived sessions are
	// removed from this map, which is what makes their codes reusable.
	Sessions map[string]*Session `json:"sessions"`

	// Archived are summaries of sessions that have ended
	Archived []*ArchivedSession `json:"archived"`

	// TotalJoins is the cumulative number of participant joins, counting
	// session creators
	TotalJoins int `json:"total_joins"`
}

// NewCommunity creates an empty community for a guild
func NewCommunity(guildID string) *Community {
	return &Community{
		GuildID:  guildID,
		Sessions: make(map[string]*Session),
		Archived: []*ArchivedSession{},
	}
}

// ActiveCodes returns the set of join codes currently in use
func (c *Community) ActiveCodes() map[string]struct{} {
	codes := make(map[string]struct{}, len(c.Sessions))
	for code := range c.Sessions {
		codes[code] = struct{}{}
	}
	return codes
}

// Clone returns a deep copy of the community
func (c *Community) Clone() *Community {
	if c == nil {
		return nil
	}

	clone := &Community{
		GuildID:    c.GuildID,
		Sessions:   make(map[string]*Session, len(c.Sessions)),
		Archived:   make([]*ArchivedSession, 0, len(c.Archived)),
		TotalJoins: c.TotalJoins,
	}

	for code, session := range c.Sessions {
		clone.Sessions[code] = session.Clone()
	}

	for _, archived := range c.Archived {
		clone.Archived = append(clone.Archived, archived.Clone())
	}

	return clone
}
