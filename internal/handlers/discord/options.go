package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

// badOption is an option value that cannot be used as given
type badOption string

func (e badOption) Error() string {
	return string(e)
}

// optionValues indexes a subcommand's options by name
type optionValues map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) optionValues {
	m := make(optionValues, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// String returns the trimmed string option, or "" when absent
func (o optionValues) String(name string) string {
	if opt, ok := o[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

// Int returns the integer option, or def when absent
func (o optionValues) Int(name string, def int64) int64 {
	if opt, ok := o[name]; ok {
		return opt.IntValue()
	}
	return def
}

// Bool returns the boolean option, false when absent
func (o optionValues) Bool(name string) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// query builds the history filters shared by stats and history
func (o optionValues) query() tracker.Query {
	return tracker.Query{
		Criteria: history.Criteria{
			Player:        o.String("player"),
			AdversaryName: o.String("adversary"),
		},
		Search: o.String("search"),
	}
}

// draft builds a game draft from the record options. Seats are read in
// order and a player without a spirit (or the reverse) is rejected.
func (o optionValues) draft() (tracker.GameDraft, error) {
	outcome, err := models.ParseOutcome(o.String("outcome"))
	if err != nil {
		return tracker.GameDraft{}, badOption(err.Error())
	}

	draft := tracker.GameDraft{
		AdversaryName:  o.String("adversary"),
		AdversaryLevel: int(o.Int("level", -1)),
		Outcome:        outcome,
		Notes:          o.String("notes"),
	}

	if raw := o.String("date"); raw != "" {
		date, err := models.ParseDate(raw)
		if err != nil {
			return tracker.GameDraft{}, badOption(err.Error())
		}
		draft.DatePlayed = date
	}

	for n := 1; n <= maxSeats; n++ {
		player := o.String(fmt.Sprintf("player%d", n))
		spirit := o.String(fmt.Sprintf("spirit%d", n))
		if player == "" && spirit == "" {
			continue
		}
		if player == "" || spirit == "" {
			return tracker.GameDraft{}, badOption(fmt.Sprintf("seat %d needs both a player and a spirit", n))
		}

		name, aspect := splitSpiritLabel(spirit)
		draft.Seats = append(draft.Seats, tracker.SeatDraft{
			Player: player,
			Spirit: name,
			Aspect: aspect,
		})
	}

	return draft, nil
}

// splitSpiritLabel splits "Name (Aspect)" into its parts
func splitSpiritLabel(label string) (string, string) {
	label = strings.TrimSpace(label)
	open := strings.LastIndex(label, " (")
	if open < 0 || !strings.HasSuffix(label, ")") {
		return label, ""
	}
	return label[:open], label[open+2 : len(label)-1]
}
