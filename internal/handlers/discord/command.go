package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/registry"
	"github.com/crewcall-bot/crewcall/internal/store"
)

func (b *Bot) handleCreate(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	input := &registry.CreateSessionInput{
		GuildID:     m.GuildID,
		CreatorID:   m.Author.ID,
		CreatorName: displayName(m),
	}
	if len(args) > 0 {
		input.Color = args[0]
	}

	output, err := b.registry.CreateSession(ctx, input)
	if err != nil {
		b.replyError(ctx, m, err)
		return
	}

	b.reply(ctx, m, "", renderLobbyCard(b.prefix, output.Session))
}

func (b *Bot) handleJoin(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.reply(ctx, m, fmt.Sprintf("Usage: `%sjoin CODE [color]`", b.prefix), nil)
		return
	}

	input := &registry.JoinSessionInput{
		GuildID:  m.GuildID,
		Code:     args[0],
		UserID:   m.Author.ID,
		UserName: displayName(m),
	}
	if len(args) > 1 {
		input.Color = args[1]
	}

	output, err := b.registry.JoinSession(ctx, input)
	if err != nil {
		b.replyError(ctx, m, err)
		return
	}

	if output.AlreadyJoined {
		b.reply(ctx, m, fmt.Sprintf("You're already in lobby **%s**.", output.Session.Code), nil)
		return
	}

	b.reply(ctx, m, "", renderLobbyCard(b.prefix, output.Session))
}

func (b *Bot) handleArchive(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		b.reply(ctx, m, fmt.Sprintf("Usage: `%send CODE`", b.prefix), nil)
		return
	}

	output, err := b.registry.ArchiveSession(ctx, &registry.ArchiveSessionInput{
		GuildID: m.GuildID,
		Code:    args[0],
	})
	if err != nil {
		b.replyError(ctx, m, err)
		return
	}

	b.reply(ctx, m, fmt.Sprintf("Lobby **%s** archived after %d players. Its code is free again.",
		output.Archived.Code, output.Archived.ParticipantCount), nil)
}

func (b *Bot) handleSummary(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	output, err := b.registry.GetSummary(ctx, &registry.GetSummaryInput{})
	if err != nil {
		b.replyError(ctx, m, err)
		return
	}

	b.reply(ctx, m, "", renderSummaryCard(output))
}

func (b *Bot) handleSave(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if _, err := b.registry.SaveSnapshot(ctx, &registry.SaveSnapshotInput{}); err != nil {
		b.replyError(ctx, m, err)
		return
	}

	b.reply(ctx, m, "State saved.", nil)
}

func (b *Bot) handleReload(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	output, err := b.registry.Reload(ctx, &registry.ReloadInput{})
	if err != nil {
		b.replyError(ctx, m, err)
		return
	}

	if output.FirstRun {
		b.reply(ctx, m, "No saved state found; started fresh.", nil)
		return
	}

	b.reply(ctx, m, "State reloaded.", nil)
}

func (b *Bot) handleClear(ctx context.Context, m *discordgo.MessageCreate, args []string) {
	if _, err := b.registry.Clear(ctx, &registry.ClearInput{}); err != nil {
		b.replyError(ctx, m, err)
		return
	}

	b.reply(ctx, m, "All lobby state cleared.", nil)
}

// reply sends a message back to the originating channel. Delivery failures
// are logged; the triggering operation already completed.
func (b *Bot) reply(ctx context.Context, m *discordgo.MessageCreate, content string, card *notify.Card) {
	err := b.sink.NotifyChannel(ctx, &notify.NotifyChannelInput{
		ChannelID: m.ChannelID,
		Content:   content,
		Card:      card,
	})
	if err != nil {
		log.Printf("Failed to deliver reply in channel %s: %v", m.ChannelID, err)
	}
}

func (b *Bot) replyError(ctx context.Context, m *discordgo.MessageCreate, err error) {
	log.Printf("Command failed in guild %s: %v", m.GuildID, err)
	b.reply(ctx, m, userMessage(err), nil)
}

// userMessage maps each failure kind to a distinct, truthful reply
func userMessage(err error) string {
	switch {
	case errors.Is(err, registry.ErrSessionNotFound):
		return "That code doesn't match any active lobby here."
	case errors.Is(err, registry.ErrCodeSpaceExhausted):
		return "Couldn't find a free join code. Try again in a moment."
	case errors.Is(err, store.ErrCorrupt):
		return "Saved state is corrupt and needs operator attention. Nothing was changed."
	default:
		return "Something went wrong and the operation did not complete."
	}
}
