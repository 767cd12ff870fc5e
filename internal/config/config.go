package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrDiscordTokenRequired is returned when the bot starts without a token
var ErrDiscordTokenRequired = errors.New("DISCORD_TOKEN environment variable is required")

// Config holds process configuration read from the environment
type Config struct {
	// StorageURI selects the blob store backend: redis://, rediss://,
	// sqlite://, file:// or a bare directory
	StorageURI string `env:"BLIGHTED_ISLAND_STORAGE_URI" envDefault:"file://./data"`

	// StorageRoot is the blob prefix games are stored under
	StorageRoot string `env:"BLIGHTED_ISLAND_STORAGE_ROOT" envDefault:"recorded_games/"`

	// PlayersRoot is the blob prefix runtime-added players are stored under
	PlayersRoot string `env:"BLIGHTED_ISLAND_PLAYERS_ROOT" envDefault:"players/"`

	// RosterPath overrides the embedded roster when set
	RosterPath string `env:"BLIGHTED_ISLAND_ROSTER"`

	CacheTTL time.Duration `env:"BLIGHTED_ISLAND_CACHE_TTL" envDefault:"5m"`
	HTTPAddr string        `env:"BLIGHTED_ISLAND_HTTP_ADDR" envDefault:":8080"`

	// RandomSeed fixes the random source, zero seeds from the clock
	RandomSeed int64 `env:"BLIGHTED_ISLAND_RANDOM_SEED"`

	// Discord bot settings
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Load reads the given .env files (".env" when none are named) into the
// environment without overriding variables already set, then parses Config.
// Missing files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// RequireDiscord checks the settings the Discord bot cannot start without
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return ErrDiscordTokenRequired
	}
	return nil
}
