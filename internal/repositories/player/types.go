package player

import "github.com/f4hy/blightedisland/internal/models"

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	Name string
}

// AddPlayerOutput contains the stored player
type AddPlayerOutput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	Name string
}

// ListPlayersInput contains parameters for listing players
type ListPlayersInput struct {
}

// ListPlayersOutput contains stored players sorted by name
type ListPlayersOutput struct {
	Players []*models.Player
}
