package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Config holds configuration for the Discord sink
type Config struct {
	// Session is the shared Discord session
	Session *discordgo.Session
}

// discordSink implements the Sink interface over a Discord session
type discordSink struct {
	session *discordgo.Session
}

// NewDiscord creates a new Discord-backed notification sink
func NewDiscord(cfg *Config) (*discordSink, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &discordSink{
		session: cfg.Session,
	}, nil
}

// NotifyUser sends a direct message to a user
func (d *discordSink) NotifyUser(ctx context.Context, input *NotifyUserInput) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	channel, err := d.session.UserChannelCreate(input.UserID)
	if err != nil {
		return fmt.Errorf("%w: failed to open DM channel for user %s: %v", ErrDelivery, input.UserID, err)
	}

	return d.send(channel.ID, input.Content, input.Card)
}

// NotifyChannel sends a message to a channel
func (d *discordSink) NotifyChannel(ctx context.Context, input *NotifyChannelInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	return d.send(input.ChannelID, input.Content, input.Card)
}

func (d *discordSink) send(channelID, content string, card *Card) error {
	message := &discordgo.MessageSend{
		Content: content,
	}

	if card != nil {
		message.Embeds = []*discordgo.MessageEmbed{renderCard(card)}
	}

	if _, err := d.session.ChannelMessageSendComplex(channelID, message); err != nil {
		return fmt.Errorf("%w: channel %s: %v", ErrDelivery, channelID, err)
	}

	return nil
}

func renderCard(card *Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       card.Title,
		Description: card.Description,
		Color:       card.Color,
	}

	for _, field := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	return embed
}
