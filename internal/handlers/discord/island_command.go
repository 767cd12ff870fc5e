package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/services/messaging"
	"github.com/f4hy/blightedisland/internal/services/tracker"
	"github.com/f4hy/blightedisland/internal/stats"
)

const (
	// maxSeats is the number of player/spirit option pairs on /island record
	maxSeats = 6

	// maxChoices is Discord's limit on autocomplete choices
	maxChoices = 25

	defaultHistoryLimit = 10

	commandTimeout = 10 * time.Second

	// autocomplete cannot be deferred and must answer within three seconds
	autocompleteTimeout = 2 * time.Second
)

// IslandCommand handles the /island command
type IslandCommand struct {
	BaseCommand
	tracker   tracker.Service
	messaging messaging.Service
}

// NewIslandCommand creates a new island command handler
func NewIslandCommand(trackerService tracker.Service, messagingService messaging.Service) *IslandCommand {
	return &IslandCommand{
		BaseCommand: BaseCommand{
			Name:        "island",
			Description: "Spirit Island game tracker",
			Options:     islandOptions(),
		},
		tracker:   trackerService,
		messaging: messagingService,
	}
}

func islandOptions() []*discordgo.ApplicationCommandOption {
	minLevel := float64(models.MinAdversaryLevel)
	minOne := 1.0

	groupChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(stats.GroupKeys))
	for _, key := range stats.GroupKeys {
		groupChoices = append(groupChoices, &discordgo.ApplicationCommandOptionChoice{Name: string(key), Value: string(key)})
	}
	complexityChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.Complexities))
	for _, c := range models.Complexities {
		complexityChoices = append(complexityChoices, &discordgo.ApplicationCommandOptionChoice{Name: string(c), Value: string(c)})
	}

	playerFilter := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "player",
		Description:  "Only games this player sat at",
		Autocomplete: true,
	}
	adversaryFilter := &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "adversary",
		Description:  "Only games against this adversary",
		Autocomplete: true,
	}

	record := []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         "adversary",
			Description:  "Adversary faced",
			Required:     true,
			Autocomplete: true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "level",
			Description: "Adversary level",
			Required:    true,
			MinValue:    &minLevel,
			MaxValue:    models.MaxAdversaryLevel,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "outcome",
			Description: "How the game ended",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Won", Value: string(models.OutcomeWon)},
				{Name: "Lost", Value: string(models.OutcomeLost)},
				{Name: "Desync", Value: string(models.OutcomeDesync)},
			},
		},
	}
	for n := 1; n <= maxSeats; n++ {
		record = append(record,
			&discordgo.ApplicationCommandOption{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         fmt.Sprintf("player%d", n),
				Description:  fmt.Sprintf("Player in seat %d", n),
				Required:     n == 1,
				Autocomplete: true,
			},
			&discordgo.ApplicationCommandOption{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         fmt.Sprintf("spirit%d", n),
				Description:  fmt.Sprintf("Spirit in seat %d", n),
				Required:     n == 1,
				Autocomplete: true,
			},
		)
	}
	record = append(record,
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "date",
			Description: "Date played as YYYY-MM-DD, today when omitted",
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "notes",
			Description: "Anything worth remembering",
		},
	)

	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "stats",
			Description: "Win rates grouped by adversary, spirit or player",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "group",
					Description: "What to group games by",
					Choices:     groupChoices,
				},
				playerFilter,
				adversaryFilter,
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "history",
			Description: "Recently recorded games",
			Options: []*discordgo.ApplicationCommandOption{
				playerFilter,
				adversaryFilter,
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "search",
					Description: "Text to look for in adversaries, players and spirits",
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "How many games to show",
					MinValue:    &minOne,
					MaxValue:    maxChoices,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "adversary",
			Description: "Pick a random adversary",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "level",
					Description: "Adversary level",
					Required:    true,
					MinValue:    &minLevel,
					MaxValue:    models.MaxAdversaryLevel,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "weighted",
					Description: "Favor adversaries played less often at this level",
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "spirit",
			Description: "Pick a random spirit",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "complexity",
					Description: "Only spirits of this complexity",
					Choices:     complexityChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "weighted",
					Description: "Favor spirits played less often",
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "record",
			Description: "Record a finished game",
			Options:     record,
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "addplayer",
			Description: "Add a player to the roster",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Player name",
					Required:    true,
				},
			},
		},
	}
}

// Handle processes a Discord interaction for the island command
func (c *IslandCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	// Discord drops interactions not acknowledged within three seconds
	if err := DeferResponse(s, i); err != nil {
		return fmt.Errorf("failed to defer response: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var (
		embed *discordgo.MessageEmbed
		err   error
	)
	switch sub.Name {
	case "stats":
		embed, err = c.handleStats(ctx, opts)
	case "history":
		embed, err = c.handleHistory(ctx, opts)
	case "adversary":
		embed, err = c.handleAdversary(ctx, opts)
	case "spirit":
		embed, err = c.handleSpirit(ctx, opts)
	case "record":
		embed, err = c.handleRecord(ctx, opts)
	case "addplayer":
		embed, err = c.handleAddPlayer(ctx, opts)
	default:
		err = fmt.Errorf("unknown subcommand %q", sub.Name)
	}

	if err != nil {
		log.Printf("Error handling /%s %s: %v", c.Name, sub.Name, err)
		return EditWithError(s, i, c.errorMessage(ctx, err))
	}
	return EditWithEmbed(s, i, embed)
}

func (c *IslandCommand) handleStats(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	group, err := stats.ParseGroupKey(opts.String("group"))
	if err != nil {
		return nil, err
	}

	output, err := c.tracker.GetStats(ctx, &tracker.GetStatsInput{
		Query: opts.query(),
		Group: group,
	})
	if err != nil {
		return nil, err
	}

	summary, err := c.messaging.GetSummaryMessage(ctx, &messaging.GetSummaryMessageInput{
		Games:   output.Summary.Games,
		Wins:    output.Summary.Wins,
		Losses:  output.Summary.Losses,
		WinRate: output.Summary.WinRate,
	})
	if err != nil {
		return nil, err
	}

	return renderStats(output, summary.Message), nil
}

func (c *IslandCommand) handleHistory(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	output, err := c.tracker.ListGames(ctx, &tracker.ListGamesInput{
		Query: opts.query(),
		Sort:  history.SortNewest,
	})
	if err != nil {
		return nil, err
	}

	limit := int(opts.Int("limit", defaultHistoryLimit))
	return renderHistory(output.Games, limit, output.Warnings), nil
}

func (c *IslandCommand) handleAdversary(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	weighted := opts.Bool("weighted")
	output, err := c.tracker.PickAdversary(ctx, &tracker.PickAdversaryInput{
		Level:    int(opts.Int("level", 0)),
		Weighted: weighted,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetPickMessage(ctx, &messaging.GetPickMessageInput{
		Kind:     messaging.PickAdversary,
		Label:    output.Adversary.Label(),
		Stats:    output.Stats,
		Weighted: weighted,
	})
	if err != nil {
		return nil, err
	}

	return renderPick(msg.Title, msg.Message, weighted, output.Warnings), nil
}

func (c *IslandCommand) handleSpirit(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	weighted := opts.Bool("weighted")
	output, err := c.tracker.PickSpirit(ctx, &tracker.PickSpiritInput{
		Complexity: models.Complexity(opts.String("complexity")),
		Weighted:   weighted,
	})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetPickMessage(ctx, &messaging.GetPickMessageInput{
		Kind:     messaging.PickSpirit,
		Label:    output.Spirit.String(),
		Stats:    output.Stats,
		Weighted: weighted,
	})
	if err != nil {
		return nil, err
	}

	return renderPick(msg.Title, msg.Message, weighted, output.Warnings), nil
}

func (c *IslandCommand) handleRecord(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	draft, err := opts.draft()
	if err != nil {
		return nil, err
	}

	output, err := c.tracker.RecordGame(ctx, &tracker.RecordGameInput{Draft: draft})
	if err != nil {
		return nil, err
	}

	msg, err := c.messaging.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{
		Outcome:   output.Game.Outcome,
		Adversary: output.Game.Adversary,
	})
	if err != nil {
		return nil, err
	}

	return renderRecorded(output.Game, msg.Title, msg.Message), nil
}

func (c *IslandCommand) handleAddPlayer(ctx context.Context, opts optionValues) (*discordgo.MessageEmbed, error) {
	output, err := c.tracker.AddPlayer(ctx, &tracker.AddPlayerInput{Name: opts.String("name")})
	if err != nil {
		return nil, err
	}

	return &discordgo.MessageEmbed{
		Title:       "Player added",
		Description: fmt.Sprintf("**%s** can now be seated in `/island record`.", output.Player.Name),
		Color:       colorDefault,
	}, nil
}

// errorMessage turns err into text for the user. Tracker errors keep their
// detail; anything else gets a generic line.
func (c *IslandCommand) errorMessage(ctx context.Context, err error) string {
	errorType := ""
	if te, ok := tracker.AsTrackerError(err); ok {
		errorType = string(te)
	}

	output, msgErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if msgErr != nil {
		return "Something went wrong."
	}
	if errorType == "" {
		var parse badOption
		if errors.As(err, &parse) {
			return parse.Error()
		}
		return output.Message
	}
	return output.Message + "\n" + err.Error()
}

// Autocomplete suggests catalog entries for the focused option
func (c *IslandCommand) Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithChoices(s, i, nil)
	}

	focused := focusedOption(data.Options[0].Options)
	if focused == nil {
		return RespondWithChoices(s, i, nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), autocompleteTimeout)
	defer cancel()

	catalog, err := c.tracker.GetCatalog(ctx, &tracker.GetCatalogInput{})
	if err != nil {
		RespondWithChoices(s, i, nil)
		return err
	}

	typed := focused.StringValue()
	var values []string
	switch name := focused.Name; {
	case name == "adversary":
		values = catalog.Adversaries
	case strings.HasPrefix(name, "player"):
		for _, p := range catalog.Players {
			values = append(values, p.Name)
		}
	case strings.HasPrefix(name, "spirit"):
		for _, sp := range catalog.Spirits {
			values = append(values, sp.String())
		}
	}

	return RespondWithChoices(s, i, choices(values, typed))
}

// choices returns up to maxChoices values containing typed, ignoring case
func choices(values []string, typed string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, v := range values {
		if len(out) == maxChoices {
			break
		}
		if typed == "" || strings.Contains(strings.ToLower(v), typed) {
			out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
		}
	}
	return out
}

func focusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range opts {
		if opt.Focused {
			return opt
		}
	}
	return nil
}
