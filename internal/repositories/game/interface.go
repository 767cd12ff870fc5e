package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/f4hy/blightedisland/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the interface for recorded game persistence
type Repository interface {
	// ListGames loads every recorded game, newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// SaveGame persists a game under its content hash
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	// ImportGames validates and saves every record of an export document
	ImportGames(ctx context.Context, input *ImportGamesInput) (*ImportGamesOutput, error)

	// ExportGames renders games as a downloadable export document
	ExportGames(ctx context.Context, input *ExportGamesInput) (*ExportGamesOutput, error)
}
