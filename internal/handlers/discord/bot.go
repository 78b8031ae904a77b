package discord

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/registry"
)

// DefaultPrefix is the command prefix when none is configured
const DefaultPrefix = "!au"

// commandFunc handles one inbound command event
type commandFunc func(ctx context.Context, m *discordgo.MessageCreate, args []string)

// Bot represents the Discord bot instance
type Bot struct {
	session  *discordgo.Session
	registry registry.Service
	sink     notify.Sink
	prefix   string
	commands map[string]commandFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared Discord session
	Session *discordgo.Session

	// Registry owns all lobby state
	Registry registry.Service

	// Sink delivers replies
	Sink notify.Sink

	// CommandPrefix marks command messages, e.g. "!au"
	CommandPrefix string
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.Registry == nil {
		return nil, errors.New("registry cannot be nil")
	}

	if cfg.Sink == nil {
		return nil, errors.New("sink cannot be nil")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	bot := &Bot{
		session:  cfg.Session,
		registry: cfg.Registry,
		sink:     cfg.Sink,
		prefix:   prefix,
	}

	bot.commands = map[string]commandFunc{
		prefix:             bot.handleCreate,
		prefix + "join":    bot.handleJoin,
		prefix + "end":     bot.handleArchive,
		prefix + "summary": bot.handleSummary,
		prefix + "save":    bot.handleSave,
		prefix + "reload":  bot.handleReload,
		prefix + "clear":   bot.handleClear,
	}

	// Register the message handler
	cfg.Session.AddHandler(bot.handleMessage)
	cfg.Session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return bot, nil
}

// Start opens the Discord connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return err
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// handleMessage routes an inbound message to at most one command handler
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	name, args, ok := parseCommand(b.prefix, m.Content)
	if !ok {
		return
	}

	handler, ok := b.commands[name]
	if !ok {
		return
	}

	handler(context.Background(), m, args)
}

// parseCommand extracts the leading prefix-marked token and the remaining
// words as arguments. Returns false for anything that is not a command.
func parseCommand(prefix, content string) (string, []string, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], prefix) {
		return "", nil, false
	}

	return fields[0], fields[1:], true
}

// displayName prefers the guild nickname over the account username
func displayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	return m.Author.Username
}
