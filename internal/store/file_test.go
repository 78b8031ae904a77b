package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/stretchr/testify/suite"
)

type FileStoreTestSuite struct {
	suite.Suite
	path    string
	store   Store
	testNow time.Time
}

func (s *FileStoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "state.json")

	store, err := NewFile(&FileConfig{
		Path: s.path,
	})
	s.Require().NoError(err)
	s.store = store

	s.testNow = time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC)
}

func TestFileStoreTestSuite(t *testing.T) {
	suite.Run(t, new(FileStoreTestSuite))
}

func (s *FileStoreTestSuite) testSnapshot() *models.Snapshot {
	snapshot := models.NewSnapshot()
	community := snapshot.EnsureCommunity("guild-1")
	community.TotalJoins = 3
	community.Sessions["QWERTY"] = &models.Session{
		ID:        "session-1",
		Code:      "QWERTY",
		GuildID:   "guild-1",
		CreatedBy: "user-1",
		Status:    models.SessionStatusActive,
		CreatedAt: s.testNow,
		Participants: []*models.Participant{
			{UserID: "user-1", Name: "Creator", Color: "red", JoinedAt: s.testNow},
			{UserID: "user-2", Name: "Friend", Color: "cyan", JoinedAt: s.testNow},
		},
	}
	community.Archived = append(community.Archived, &models.ArchivedSession{
		Code:             "OLDONE",
		CreatedBy:        "user-1",
		CreatedAt:        s.testNow.Add(-time.Hour),
		ArchivedAt:       s.testNow,
		ParticipantCount: 5,
	})
	return snapshot
}

func (s *FileStoreTestSuite) TestSaveAndLoadRoundTrip() {
	snapshot := s.testSnapshot()

	err := s.store.Save(context.Background(), &SaveInput{Snapshot: snapshot})
	s.Require().NoError(err)

	loaded, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Equal(snapshot, loaded)
}

func (s *FileStoreTestSuite) TestLoadMissingReturnsNotFound() {
	loaded, err := s.store.Load(context.Background())
	s.Require().ErrorIs(err, ErrNotFound)
	s.Nil(loaded)
}

func (s *FileStoreTestSuite) TestLoadCorruptReturnsCorrupt() {
	err := os.WriteFile(s.path, []byte("{not json"), 0o644)
	s.Require().NoError(err)

	loaded, err := s.store.Load(context.Background())
	s.Require().ErrorIs(err, ErrCorrupt)
	s.Nil(loaded)
}

func (s *FileStoreTestSuite) TestLoadUnsupportedVersionReturnsCorrupt() {
	err := os.WriteFile(s.path, []byte(`{"version":99,"communities":{}}`), 0o644)
	s.Require().NoError(err)

	_, err = s.store.Load(context.Background())
	s.Require().ErrorIs(err, ErrCorrupt)
}

func (s *FileStoreTestSuite) TestSaveCreatesParentDirectory() {
	nested := filepath.Join(s.T().TempDir(), "var", "lib", "crewcall", "state.json")
	store, err := NewFile(&FileConfig{Path: nested})
	s.Require().NoError(err)

	err = store.Save(context.Background(), &SaveInput{Snapshot: models.NewSnapshot()})
	s.Require().NoError(err)

	loaded, err := store.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(loaded.Communities)
}

func (s *FileStoreTestSuite) TestSaveLeavesNoTempFile() {
	err := s.store.Save(context.Background(), &SaveInput{Snapshot: s.testSnapshot()})
	s.Require().NoError(err)

	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err))
}

func (s *FileStoreTestSuite) TestSaveReplacesPreviousSnapshot() {
	err := s.store.Save(context.Background(), &SaveInput{Snapshot: s.testSnapshot()})
	s.Require().NoError(err)

	err = s.store.Save(context.Background(), &SaveInput{Snapshot: models.NewSnapshot()})
	s.Require().NoError(err)

	loaded, err := s.store.Load(context.Background())
	s.Require().NoError(err)
	s.Empty(loaded.Communities)
}

func (s *FileStoreTestSuite) TestSaveNilInput() {
	s.Error(s.store.Save(context.Background(), nil))
	s.Error(s.store.Save(context.Background(), &SaveInput{}))
}

func (s *FileStoreTestSuite) TestNewFileValidatesConfig() {
	_, err := NewFile(nil)
	s.Error(err)

	_, err = NewFile(&FileConfig{})
	s.Error(err)
}
