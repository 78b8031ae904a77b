package discord

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/crewcall-bot/crewcall/internal/notify"
	notifyMocks "github.com/crewcall-bot/crewcall/internal/notify/mocks"
	"github.com/crewcall-bot/crewcall/internal/registry"
	registryMocks "github.com/crewcall-bot/crewcall/internal/registry/mocks"
	"github.com/crewcall-bot/crewcall/internal/store"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRegistry *registryMocks.MockService
	mockSink     *notifyMocks.MockSink
	bot          *Bot
	session      *discordgo.Session

	testGuildID   string
	testChannelID string
	testUserID    string
}

func (s *BotTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRegistry = registryMocks.NewMockService(s.mockCtrl)
	s.mockSink = notifyMocks.NewMockSink(s.mockCtrl)
	s.session = &discordgo.Session{}

	bot, err := New(&Config{
		Session:  s.session,
		Registry: s.mockRegistry,
		Sink:     s.mockSink,
	})
	s.Require().NoError(err)
	s.bot = bot

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testUserID = "test-user-id"
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) message(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			GuildID:   s.testGuildID,
			ChannelID: s.testChannelID,
			Author: &discordgo.User{
				ID:       s.testUserID,
				Username: "Player",
			},
		},
	}
}

func (s *BotTestSuite) testSession() *models.Session {
	return &models.Session{
		ID:        "test-session-id",
		Code:      "ABCDEF",
		GuildID:   s.testGuildID,
		CreatedBy: s.testUserID,
		Status:    models.SessionStatusActive,
		CreatedAt: time.Date(2025, 8, 14, 12, 0, 0, 0, time.UTC),
		Participants: []*models.Participant{
			{UserID: s.testUserID, Name: "Player", Color: "red"},
		},
	}
}

func (s *BotTestSuite) TestCreateCommand() {
	s.mockRegistry.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *registry.CreateSessionInput) (*registry.CreateSessionOutput, error) {
			s.Equal(s.testGuildID, input.GuildID)
			s.Equal(s.testUserID, input.CreatorID)
			s.Equal("red", input.Color)
			return &registry.CreateSessionOutput{
				Code:    "ABCDEF",
				Session: s.testSession(),
			}, nil
		})
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *notify.NotifyChannelInput) error {
			s.Equal(s.testChannelID, input.ChannelID)
			s.Require().NotNil(input.Card)
			s.Contains(input.Card.Title, "ABCDEF")
			return nil
		})

	s.bot.handleMessage(s.session, s.message("!au red"))
}

func (s *BotTestSuite) TestJoinCommandRoutesCodeAndColor() {
	s.mockRegistry.EXPECT().JoinSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *registry.JoinSessionInput) (*registry.JoinSessionOutput, error) {
			s.Equal("ABCDEF", input.Code)
			s.Equal("cyan", input.Color)
			return &registry.JoinSessionOutput{Session: s.testSession()}, nil
		})
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).Return(nil)

	s.bot.handleMessage(s.session, s.message("!aujoin ABCDEF cyan"))
}

func (s *BotTestSuite) TestJoinCommandMissingCode() {
	// No registry call: malformed input never reaches the registry
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *notify.NotifyChannelInput) error {
			s.Contains(input.Content, "Usage")
			return nil
		})

	s.bot.handleMessage(s.session, s.message("!aujoin"))
}

func (s *BotTestSuite) TestJoinCommandSessionNotFound() {
	s.mockRegistry.EXPECT().JoinSession(gomock.Any(), gomock.Any()).Return(nil, registry.ErrSessionNotFound)
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *notify.NotifyChannelInput) error {
			s.Contains(input.Content, "code")
			return nil
		})

	s.bot.handleMessage(s.session, s.message("!aujoin NOPE"))
}

func (s *BotTestSuite) TestSummaryCommand() {
	s.mockRegistry.EXPECT().GetSummary(gomock.Any(), gomock.Any()).Return(&registry.GetSummaryOutput{
		ActiveSessions:     1,
		ActiveParticipants: 2,
		HistoricalSessions: 3,
	}, nil)
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *notify.NotifyChannelInput) error {
			s.Require().NotNil(input.Card)
			s.Contains(input.Card.Description, "1 lobbies")
			return nil
		})

	s.bot.handleMessage(s.session, s.message("!ausummary"))
}

func (s *BotTestSuite) TestArchiveCommand() {
	s.mockRegistry.EXPECT().ArchiveSession(gomock.Any(), gomock.Any()).Return(&registry.ArchiveSessionOutput{
		Archived: &models.ArchivedSession{Code: "ABCDEF", ParticipantCount: 4},
	}, nil)
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).Return(nil)

	s.bot.handleMessage(s.session, s.message("!auend ABCDEF"))
}

func (s *BotTestSuite) TestReloadCommandFirstRun() {
	s.mockRegistry.EXPECT().Reload(gomock.Any(), gomock.Any()).Return(&registry.ReloadOutput{FirstRun: true}, nil)
	s.mockSink.EXPECT().NotifyChannel(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *notify.NotifyChannelInput) error {
			s.Contains(input.Content, "fresh")
			return nil
		})

	s.bot.handleMessage(s.session, s.message("!aureload"))
}

func (s *BotTestSuite) TestUnknownCommandIgnored() {
	s.bot.handleMessage(s.session, s.message("!aunope"))
}

func (s *BotTestSuite) TestNonCommandIgnored() {
	s.bot.handleMessage(s.session, s.message("hello there"))
}

func (s *BotTestSuite) TestBotAuthorIgnored() {
	m := s.message("!ausummary")
	m.Author.Bot = true
	s.bot.handleMessage(s.session, m)
}

func (s *BotTestSuite) TestParseCommand() {
	name, args, ok := parseCommand("!au", "!aujoin ABCDEF cyan")
	s.True(ok)
	s.Equal("!aujoin", name)
	s.Equal([]string{"ABCDEF", "cyan"}, args)

	_, _, ok = parseCommand("!au", "")
	s.False(ok)

	_, _, ok = parseCommand("!au", "plain message !au")
	s.False(ok)

	name, args, ok = parseCommand("!au", "  !au  ")
	s.True(ok)
	s.Equal("!au", name)
	s.Empty(args)
}

func (s *BotTestSuite) TestUserMessageMapping() {
	s.NotEqual(userMessage(registry.ErrSessionNotFound), userMessage(registry.ErrCodeSpaceExhausted))
	s.Contains(userMessage(store.ErrCorrupt), "operator")
}
