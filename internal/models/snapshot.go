package models

// SnapshotVersion is the persistence format version the store understands
const SnapshotVersion = 1

// Snapshot is the complete registry state, persisted and reloaded wholesale
type Snapshot struct {
	// Version is the persistence format version
	Version int `json:"version"`

	// Communities maps guild ID to that guild's lobby state
	Communities map[string]*Community `json:"communities"`
}

// NewSnapshot creates an empty snapshot at the current format version
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:     SnapshotVersion,
		Communities: make(map[string]*Community),
	}
}

// Community returns the community for a guild, or nil if none exists yet
func (s *Snapshot) Community(guildID string) *Community {
	return s.Communities[guildID]
}

// EnsureCommunity returns the community for a guild, creating it if absent.
// Communities are created implicitly on first session creation.
func (s *Snapshot) EnsureCommunity(guildID string) *Community {
	if c, ok := s.Communities[guildID]; ok {
		return c
	}

	c := NewCommunity(guildID)
	s.Communities[guildID] = c
	return c
}

// Clone returns a deep copy of the snapshot
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	clone := &Snapshot{
		Version:     s.Version,
		Communities: make(map[string]*Community, len(s.Communities)),
	}

	for guildID, community := range s.Communities {
		clone.Communities[guildID] = community.Clone()
	}

	return clone
}
