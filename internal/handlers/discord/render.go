package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

// maxEmbedFields is Discord's limit on fields per embed
const maxEmbedFields = 25

// renderStats renders a statistics table, one field per group
func renderStats(output *tracker.GetStatsOutput, summary string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 Stats by %s", strings.ReplaceAll(string(output.Group), "_", " ")),
		Description: summary,
		Color:       colorDefault,
	}

	for _, row := range output.Rows {
		if len(embed.Fields) == maxEmbedFields {
			break
		}
		value := fmt.Sprintf("%d-%d (%.1f%%)", row.Wins, row.Losses, row.WinRate)
		if row.Played != row.Total {
			value += fmt.Sprintf(" · %d played", row.Played)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   row.Label,
			Value:  value,
			Inline: true,
		})
	}

	if hidden := len(output.Rows) - len(embed.Fields); hidden > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d more not shown", hidden)}
	}
	addWarnings(embed, output.Warnings)
	return embed
}

// renderHistory renders up to limit games, newest first as given
func renderHistory(games []*models.Game, limit int, warnings []string) *discordgo.MessageEmbed {
	if limit <= 0 || limit > maxEmbedFields {
		limit = defaultHistoryLimit
	}

	embed := &discordgo.MessageEmbed{
		Title: "📜 Game history",
		Color: colorDefault,
	}
	if len(games) == 0 {
		embed.Description = "No games match."
	} else {
		embed.Description = fmt.Sprintf("Showing %d of %d games.", min(limit, len(games)), len(games))
	}

	for _, g := range games[:min(limit, len(games))] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s · %s", g.Outcome.Icon(), g.DatePlayed, g.Adversary.Label()),
			Value: seatLines(g),
		})
	}

	addWarnings(embed, warnings)
	return embed
}

// renderPick renders a randomizer pick announcement
func renderPick(title, message string, weighted bool, warnings []string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       colorDefault,
	}
	if weighted {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Weighted toward less-played picks"}
	}
	addWarnings(embed, warnings)
	return embed
}

// renderRecorded renders the confirmation for a recorded game
func renderRecorded(g *models.Game, title, message string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       outcomeColor(g.Outcome),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Adversary", Value: g.Adversary.Label(), Inline: true},
			{Name: "Date", Value: g.DatePlayed.String(), Inline: true},
			{Name: "Seats", Value: seatLines(g)},
		},
	}
	return embed
}

func seatLines(g *models.Game) string {
	var b strings.Builder
	for _, seat := range g.PlayersPlayed {
		fmt.Fprintf(&b, "**%s**: %s\n", seat.Player.Name, seat.Spirit)
	}
	if g.Notes != "" {
		fmt.Fprintf(&b, "_%s_\n", g.Notes)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func outcomeColor(o models.Outcome) int {
	switch o {
	case models.OutcomeWon:
		return colorWon
	case models.OutcomeLost:
		return colorLost
	}
	return colorDesync
}

// addWarnings notes load problems in the footer
func addWarnings(embed *discordgo.MessageEmbed, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	text := "⚠️ " + warnings[0]
	if len(warnings) > 1 {
		text = fmt.Sprintf("⚠️ %d problems loading history", len(warnings))
	}
	if embed.Footer != nil {
		text = embed.Footer.Text + " · " + text
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
}
