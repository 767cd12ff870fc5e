package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/blobstore"
	"github.com/f4hy/blightedisland/internal/models"
)

// DefaultRoot is the blob prefix added players live under
const DefaultRoot = "players/"

var (
	// ErrPlayerNotFound is returned when a player is not found
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPlayerExists is returned when adding a name that is already stored
	ErrPlayerExists = errors.New("player already exists")

	// ErrInvalidName is returned for blank player names
	ErrInvalidName = errors.New("player name cannot be blank")
)

// Config holds configuration for the blob-backed player repository
type Config struct {
	// Store holds the player blobs
	Store blobstore.Store

	// Root is the blob prefix, DefaultRoot when empty
	Root string
}

// blobRepository implements the Repository interface on a blob store
type blobRepository struct {
	store blobstore.Store
	root  string
}

// NewBlob creates a new player repository on top of a blob store
func NewBlob(cfg *Config) (*blobRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Store == nil {
		return nil, errors.New("blob store cannot be nil")
	}

	root := cfg.Root
	if root == "" {
		root = DefaultRoot
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}

	return &blobRepository{
		store: cfg.Store,
		root:  root,
	}, nil
}

// AddPlayer stores a player once; names are trimmed and case-sensitive
func (r *blobRepository) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrInvalidName
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	_, err := r.GetPlayer(ctx, &GetPlayerInput{Name: name})
	if err == nil {
		return nil, ErrPlayerExists
	}
	if !errors.Is(err, ErrPlayerNotFound) {
		return nil, err
	}

	player := &models.Player{Name: name}
	data, err := json.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal player: %w", err)
	}

	if err := r.store.Write(ctx, r.path(name), data); err != nil {
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	return &AddPlayerOutput{Player: player}, nil
}

// GetPlayer reads one stored player
func (r *blobRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	path := r.path(input.Name)
	blobs, err := r.store.ReadAll(ctx, []string{path})
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	data, ok := blobs[path]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	var player models.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// ListPlayers reads every stored player, skipping unreadable blobs
func (r *blobRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	paths, err := r.store.List(ctx, r.root)
	if errors.Is(err, blobstore.ErrNotFound) {
		return &ListPlayersOutput{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if len(paths) == 0 {
		return &ListPlayersOutput{}, nil
	}

	blobs, err := r.store.ReadAll(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}

	players := make([]*models.Player, 0, len(blobs))
	for _, path := range paths {
		data, ok := blobs[path]
		if !ok {
			continue
		}
		var player models.Player
		if err := json.Unmarshal(data, &player); err != nil || strings.TrimSpace(player.Name) == "" {
			log.Printf("Warning: unable to parse player %s: %v", path, err)
			continue
		}
		players = append(players, &player)
	}

	slices.SortFunc(players, func(a, b *models.Player) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &ListPlayersOutput{Players: players}, nil
}

// path escapes name so no blob name starts with a dot
func (r *blobRepository) path(name string) string {
	escaped := url.PathEscape(name)
	if strings.HasPrefix(escaped, ".") {
		escaped = "%2E" + escaped[1:]
	}
	return r.root + escaped + ".json"
}
