package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/f4hy/blightedisland/internal/repositories/player Repository

import (
	"context"

	"github.com/f4hy/blightedisland/internal/models"
)

// Repository defines the interface for players added at runtime
type Repository interface {
	// AddPlayer persists a new player
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// GetPlayer retrieves a stored player by name
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// ListPlayers retrieves every stored player
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
