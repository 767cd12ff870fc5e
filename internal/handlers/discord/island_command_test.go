package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func intOpt(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	// Discord delivers numbers as JSON floats
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func boolOpt(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

func TestIslandCommand_Definition(t *testing.T) {
	cmd := NewIslandCommand(nil, nil)
	def := cmd.GetCommand()

	assert.Equal(t, "island", def.Name)

	names := make([]string, 0, len(def.Options))
	for _, sub := range def.Options {
		names = append(names, sub.Name)
		assert.LessOrEqual(t, len(sub.Options), 25, sub.Name)
		for _, opt := range sub.Options {
			assert.False(t, opt.Autocomplete && len(opt.Choices) > 0, "%s/%s", sub.Name, opt.Name)
		}
	}
	assert.Equal(t, []string{"stats", "history", "adversary", "spirit", "record", "addplayer"}, names)
}

func TestOptionValues(t *testing.T) {
	opts := optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOpt("player", "  Kyle "),
		intOpt("limit", 5),
		boolOpt("weighted", true),
	})

	assert.Equal(t, "Kyle", opts.String("player"))
	assert.Equal(t, "", opts.String("adversary"))
	assert.Equal(t, int64(5), opts.Int("limit", 10))
	assert.Equal(t, int64(10), opts.Int("level", 10))
	assert.True(t, opts.Bool("weighted"))
	assert.False(t, opts.Bool("other"))

	q := opts.query()
	assert.Equal(t, "Kyle", q.Criteria.Player)
	assert.Empty(t, q.Criteria.AdversaryName)
}

func TestOptionValues_Draft(t *testing.T) {
	opts := optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		stringOpt("adversary", "England"),
		intOpt("level", 4),
		stringOpt("outcome", "won"),
		stringOpt("player1", "Kyle"),
		stringOpt("spirit1", "Thunderspeaker (Warrior)"),
		stringOpt("player3", "Linda"),
		stringOpt("spirit3", "Sun-Bright Whirlwind"),
		stringOpt("date", "2025-02-14"),
		stringOpt("notes", "close one"),
	})

	draft, err := opts.draft()
	require.NoError(t, err)
	assert.Equal(t, tracker.GameDraft{
		DatePlayed:     models.Date{Year: 2025, Month: 2, Day: 14},
		AdversaryName:  "England",
		AdversaryLevel: 4,
		Seats: []tracker.SeatDraft{
			{Player: "Kyle", Spirit: "Thunderspeaker", Aspect: "Warrior"},
			{Player: "Linda", Spirit: "Sun-Bright Whirlwind"},
		},
		Outcome: models.OutcomeWon,
		Notes:   "close one",
	}, draft)
}

func TestOptionValues_DraftRejected(t *testing.T) {
	tests := []struct {
		name string
		opts []*discordgo.ApplicationCommandInteractionDataOption
	}{
		{"half seat", []*discordgo.ApplicationCommandInteractionDataOption{
			stringOpt("outcome", "lost"),
			stringOpt("player1", "Kyle"),
			stringOpt("spirit1", "Thunderspeaker"),
			stringOpt("player2", "Bill"),
		}},
		{"bad date", []*discordgo.ApplicationCommandInteractionDataOption{
			stringOpt("outcome", "lost"),
			stringOpt("date", "14/02/2025"),
		}},
		{"bad outcome", []*discordgo.ApplicationCommandInteractionDataOption{
			stringOpt("outcome", "draw"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := optionMap(tt.opts).draft()
			var bad badOption
			assert.ErrorAs(t, err, &bad)
		})
	}
}

func TestSplitSpiritLabel(t *testing.T) {
	tests := []struct {
		label, name, aspect string
	}{
		{"Thunderspeaker", "Thunderspeaker", ""},
		{"River Surges in Sunlight (Travel)", "River Surges in Sunlight", "Travel"},
		{"Keeper of the Forbidden Wilds (Spreading Hostility)", "Keeper of the Forbidden Wilds", "Spreading Hostility"},
		{" Shadows Flicker Like Flame (Dark Fire) ", "Shadows Flicker Like Flame", "Dark Fire"},
	}

	for _, tt := range tests {
		name, aspect := splitSpiritLabel(tt.label)
		assert.Equal(t, tt.name, name, tt.label)
		assert.Equal(t, tt.aspect, aspect, tt.label)
	}
}

func TestChoices(t *testing.T) {
	values := []string{"Brandenburg-Prussia", "England", "France (Plantation Colony)", "Sweden"}

	got := choices(values, "an")
	require.Len(t, got, 3)
	assert.Equal(t, "Brandenburg-Prussia", got[0].Name)
	assert.Equal(t, "England", got[1].Value)

	assert.Len(t, choices(values, ""), 4)

	many := make([]string, 40)
	for i := range many {
		many[i] = "x"
	}
	assert.Len(t, choices(many, "x"), maxChoices)
}

func TestFocusedOption(t *testing.T) {
	focused := stringOpt("spirit2", "thun")
	focused.Focused = true

	got := focusedOption([]*discordgo.ApplicationCommandInteractionDataOption{stringOpt("player1", "Kyle"), focused})
	assert.Same(t, focused, got)
	assert.Nil(t, focusedOption(nil))
}
