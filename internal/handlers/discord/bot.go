package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/f4hy/blightedisland/internal/services/messaging"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	tracker    tracker.Service
	messaging  messaging.Service
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Service dependencies
	TrackerService   tracker.Service
	MessagingService messaging.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		tracker:    cfg.TrackerService,
		messaging:  cfg.MessagingService,
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	islandCmd := NewIslandCommand(b.tracker, b.messaging)
	if err := b.RegisterCommand(islandCmd); err != nil {
		return fmt.Errorf("failed to register island command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for GuildID when set, globally otherwise.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction routes slash commands and autocomplete requests
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", name, err)
			}
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name].(AutocompleteHandler); ok {
			if err := h.Autocomplete(s, i); err != nil {
				log.Printf("Error autocompleting command %s: %v", name, err)
			}
		}
	}
}
