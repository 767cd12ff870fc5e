package game

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/blobstore"
	"github.com/f4hy/blightedisland/internal/common/clock"
	"github.com/f4hy/blightedisland/internal/common/uuid"
	"github.com/f4hy/blightedisland/internal/models"
)

const (
	// DefaultRoot is the blob prefix recorded games live under
	DefaultRoot = "recorded_games/"

	exportTimeLayout = "20060102_150405"
)

var (
	// ErrMalformedImport is returned when an import payload is not a JSON array
	ErrMalformedImport = errors.New("malformed import: expected a JSON array of games")

	// ErrNilGame is returned when a save is requested without a game
	ErrNilGame = errors.New("input and game cannot be nil")
)

// Config holds configuration for the blob-backed game repository
type Config struct {
	// Store holds the game blobs
	Store blobstore.Store

	// Root is the blob prefix, DefaultRoot when empty
	Root string

	// Clock supplies today's date and export timestamps
	Clock clock.Clock

	// UUID tags import batches in the log
	UUID uuid.UUID
}

// blobRepository implements the Repository interface on a blob store
type blobRepository struct {
	store blobstore.Store
	root  string
	clock clock.Clock
	uuid  uuid.UUID
}

// NewBlob creates a new game repository on top of a blob store
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

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}
	u := cfg.UUID
	if u == nil {
		u = uuid.New()
	}

	return &blobRepository{
		store: cfg.Store,
		root:  root,
		clock: c,
		uuid:  u,
	}, nil
}

// ListGames reads every blob under the root. Records that fail validation
// are skipped; a storage fault returns an empty result with the error.
func (r *blobRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	paths, err := r.store.List(ctx, r.root)
	if errors.Is(err, blobstore.ErrNotFound) {
		return &ListGamesOutput{}, nil
	}
	if err != nil {
		log.Printf("Error listing games under %s: %v", r.root, err)
		return &ListGamesOutput{}, fmt.Errorf("failed to list games: %w", err)
	}
	if len(paths) == 0 {
		return &ListGamesOutput{}, nil
	}
	slices.Sort(paths)

	blobs, err := r.store.ReadAll(ctx, paths)
	if err != nil {
		log.Printf("Error reading games under %s: %v", r.root, err)
		return &ListGamesOutput{}, fmt.Errorf("failed to read games: %w", err)
	}

	today := clock.Today(r.clock)
	output := &ListGamesOutput{
		Games: make([]*models.Game, 0, len(paths)),
	}
	for _, path := range paths {
		data, ok := blobs[path]
		if !ok {
			// listed then removed before the read
			continue
		}
		game, err := models.DecodeGame(data, today)
		if err != nil {
			log.Printf("Warning: unable to parse %s: %v", path, err)
			output.Skipped = append(output.Skipped, SkippedRecord{Path: path, Err: err})
			continue
		}
		output.Games = append(output.Games, game)
	}

	slices.SortStableFunc(output.Games, func(a, b *models.Game) int {
		return b.DatePlayed.Compare(a.DatePlayed)
	})

	return output, nil
}

// SaveGame writes the canonical encoding under its SHA-256 digest
func (r *blobRepository) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}

	data, path, err := r.encode(input.Game)
	if err != nil {
		return nil, err
	}

	if err := r.store.Write(ctx, path, data); err != nil {
		log.Printf("Error saving game to %s: %v", path, err)
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &SaveGameOutput{Path: path}, nil
}

// ImportGames saves each element of a JSON array independently
func (r *blobRepository) ImportGames(ctx context.Context, input *ImportGamesInput) (*ImportGamesOutput, error) {
	if input == nil {
		return nil, ErrMalformedImport
	}

	trimmed := bytes.TrimSpace(input.Data)
	if !bytes.HasPrefix(trimmed, []byte("[")) {
		return nil, ErrMalformedImport
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}

	batch := uuid.Short(r.uuid.NewUUID())
	log.Printf("Import %s: processing %d records", batch, len(raws))

	today := clock.Today(r.clock)
	output := &ImportGamesOutput{}
	for i, raw := range raws {
		game, err := models.DecodeGame(raw, today)
		if err == nil {
			_, err = r.SaveGame(ctx, &SaveGameInput{Game: game})
		}
		if err != nil {
			log.Printf("Import %s: record %d failed: %v", batch, i, err)
			output.Failed++
			output.Failures = append(output.Failures, ImportFailure{Index: i, Err: err})
			continue
		}
		output.Imported++
	}

	log.Printf("Import %s: %d imported, %d failed", batch, output.Imported, output.Failed)
	return output, nil
}

// ExportGames renders an indented JSON array named after the current time
func (r *blobRepository) ExportGames(ctx context.Context, input *ExportGamesInput) (*ExportGamesOutput, error) {
	games := []*models.Game{}
	if input != nil && input.Games != nil {
		games = input.Games
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}

	return &ExportGamesOutput{
		Filename: ExportFilename(r.clock),
		Data:     data,
	}, nil
}

// encode returns the canonical bytes of a game and the blob path they hash to
func (r *blobRepository) encode(game *models.Game) ([]byte, string, error) {
	data, err := json.Marshal(game)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal game: %w", err)
	}
	sum := sha256.Sum256(data)
	return data, r.root + hex.EncodeToString(sum[:]) + ".json", nil
}

// ExportFilename names an export download after the current time
func ExportFilename(c clock.Clock) string {
	return "spirit_island_games_" + c.Now().Format(exportTimeLayout) + ".json"
}
