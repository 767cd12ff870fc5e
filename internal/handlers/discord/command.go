package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorDefault = 0x2e8b57 // island green
	colorWon     = 0x00ff00
	colorLost    = 0xb22222
	colorDesync  = 0xffa500
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// AutocompleteHandler is implemented by commands with autocompleted options
type AutocompleteHandler interface {
	// Autocomplete answers an autocomplete interaction for the focused option
	Autocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// DeferResponse acknowledges an interaction so the reply can be sent later
// with EditWithEmbed or EditWithError
func DeferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

// EditWithEmbed replaces a deferred response with an embed
func EditWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

// EditWithError removes a deferred response and sends the error as an
// ephemeral followup
func EditWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	if err := s.InteractionResponseDelete(i.Interaction); err != nil {
		return err
	}

	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Error",
			Description: errorMessage,
			Color:       colorError,
		}},
		Flags: discordgo.MessageFlagsEphemeral,
	})
	return err
}

// RespondWithChoices answers an autocomplete interaction
func RespondWithChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}
