package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/f4hy/blightedisland/internal/app"
	"github.com/f4hy/blightedisland/internal/config"
	"github.com/f4hy/blightedisland/internal/handlers/discord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.RequireDiscord(); err != nil {
		log.Fatal(err)
	}

	// Initialize storage, repositories and services
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:            cfg.DiscordToken,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		TrackerService:   a.Tracker,
		MessagingService: a.Messaging,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
