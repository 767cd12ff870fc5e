package history

import (
	"github.com/f4hy/blightedisland/internal/models"
)

// Criteria narrows a game list. Every field is optional and all set fields
// must hold for a game to be kept.
type Criteria struct {
	// MinPlayers and MaxPlayers bound the seat count, inclusive
	MinPlayers *int
	MaxPlayers *int

	// Player must sit at the game
	Player string

	// AdversaryName must match exactly
	AdversaryName string

	// DateFrom and DateTo bound date_played, inclusive. Zero means unbounded.
	DateFrom models.Date
	DateTo   models.Date
}

// IsEmpty reports whether no constraint is set
func (c Criteria) IsEmpty() bool {
	return c.MinPlayers == nil && c.MaxPlayers == nil && c.Player == "" &&
		c.AdversaryName == "" && c.DateFrom.IsZero() && c.DateTo.IsZero()
}

// Match reports whether a single game satisfies every set constraint
func (c Criteria) Match(g *models.Game) bool {
	if g == nil {
		return false
	}
	n := g.PlayerCount()
	if c.MinPlayers != nil && n < *c.MinPlayers {
		return false
	}
	if c.MaxPlayers != nil && n > *c.MaxPlayers {
		return false
	}
	if c.Player != "" && !g.HasPlayer(models.Player{Name: c.Player}) {
		return false
	}
	if c.AdversaryName != "" && g.Adversary.Name != c.AdversaryName {
		return false
	}
	if !c.DateFrom.IsZero() && g.DatePlayed.Before(c.DateFrom) {
		return false
	}
	if !c.DateTo.IsZero() && g.DatePlayed.After(c.DateTo) {
		return false
	}
	return true
}

// Filter returns the games matching c in their original order
func Filter(games []*models.Game, c Criteria) []*models.Game {
	filtered := make([]*models.Game, 0, len(games))
	for _, g := range games {
		if c.Match(g) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
