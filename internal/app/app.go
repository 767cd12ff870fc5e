package app

import (
	"errors"
	"fmt"

	"github.com/f4hy/blightedisland/internal/blobstore"
	"github.com/f4hy/blightedisland/internal/catalog"
	"github.com/f4hy/blightedisland/internal/common/clock"
	"github.com/f4hy/blightedisland/internal/common/uuid"
	"github.com/f4hy/blightedisland/internal/config"
	"github.com/f4hy/blightedisland/internal/dice"
	"github.com/f4hy/blightedisland/internal/randomizer"
	"github.com/f4hy/blightedisland/internal/repositories/game"
	"github.com/f4hy/blightedisland/internal/repositories/player"
	"github.com/f4hy/blightedisland/internal/services/messaging"
	"github.com/f4hy/blightedisland/internal/services/tracker"
)

// App bundles the services every binary runs on
type App struct {
	Tracker   tracker.Service
	Messaging messaging.Service
	Catalog   *catalog.Catalog

	store blobstore.Store
}

// New opens the configured blob store and builds the services on top of it
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	cat, err := catalog.Load(cfg.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	store, err := blobstore.Open(cfg.StorageURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	a, err := build(cfg, cat, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

func build(cfg *config.Config, cat *catalog.Catalog, store blobstore.Store) (*App, error) {
	clk := &clock.DefaultClock{}
	roller := dice.New(&dice.Config{Seed: cfg.RandomSeed})

	blobRepo, err := game.NewBlob(&game.Config{
		Store: store,
		Root:  cfg.StorageRoot,
		Clock: clk,
		UUID:  uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	gameRepo, err := game.NewCached(&game.CachedConfig{
		Repository: blobRepo,
		TTL:        cfg.CacheTTL,
		Clock:      clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game cache: %w", err)
	}

	playerRepo, err := player.NewBlob(&player.Config{
		Store: store,
		Root:  cfg.PlayersRoot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}

	picker, err := randomizer.New(&randomizer.Config{
		Catalog: cat,
		Roller:  roller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create randomizer: %w", err)
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		GameRepo:   gameRepo,
		PlayerRepo: playerRepo,
		Catalog:    cat,
		Randomizer: picker,
		Clock:      clk,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracker service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Roller: roller,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &App{
		Tracker:   trackerSvc,
		Messaging: messagingSvc,
		Catalog:   cat,
		store:     store,
	}, nil
}

// Close releases the blob store
func (a *App) Close() error {
	return a.store.Close()
}
