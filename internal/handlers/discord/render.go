package discord

import (
	"fmt"
	"strings"

	"github.com/crewcall-bot/crewcall/internal/models"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/registry"
)

const (
	colorGreen = 0x00ff00
)

// renderLobbyCard builds the lobby card shown after create and join
func renderLobbyCard(prefix string, session *models.Session) *notify.Card {
	var roster strings.Builder
	for i, p := range session.Participants {
		if i > 0 {
			roster.WriteString("\n")
		}
		if p.Color != "" {
			roster.WriteString(fmt.Sprintf("%s (%s)", p.Name, p.Color))
		} else {
			roster.WriteString(p.Name)
		}
	}

	return &notify.Card{
		Title:       fmt.Sprintf("Lobby %s", session.Code),
		Description: fmt.Sprintf("Join with `%sjoin %s`", prefix, session.Code),
		Color:       colorGreen,
		Fields: []notify.CardField{
			{
				Name:   fmt.Sprintf("Players (%d)", len(session.Participants)),
				Value:  roster.String(),
				Inline: false,
			},
		},
	}
}

// renderSummaryCard builds the aggregate statistics card
func renderSummaryCard(summary *registry.GetSummaryOutput) *notify.Card {
	card := &notify.Card{
		Title: "Lobby summary",
		Description: fmt.Sprintf("%d lobbies being played by %d players. %d total lobbies played.",
			summary.ActiveSessions, summary.ActiveParticipants, summary.HistoricalSessions),
		Color: colorGreen,
	}

	for _, cs := range summary.Communities {
		card.Fields = append(card.Fields, notify.CardField{
			Name: cs.GuildID,
			Value: fmt.Sprintf("%d active, %d players, %d played, %d joins all-time",
				cs.ActiveSessions, cs.ActiveParticipants, cs.HistoricalSessions, cs.TotalJoins),
			Inline: false,
		})
	}

	return card
}
