package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/f4hy/blightedisland/internal/app"
	"github.com/f4hy/blightedisland/internal/config"
	"github.com/f4hy/blightedisland/internal/handlers/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize storage, repositories and services
	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer a.Close()

	server, err := web.New(&web.Config{
		Addr:             cfg.HTTPAddr,
		TrackerService:   a.Tracker,
		MessagingService: a.Messaging,
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	errc := make(chan error, 1)
	go func() {
		errc <- server.Start()
	}()

	// Wait for interrupt signal or a server failure
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	select {
	case <-sc:
	case err := <-errc:
		if err != nil {
			log.Printf("Server stopped: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}

	log.Println("Server has been shut down")
}
