package history

import (
	"fmt"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/models"
)

// SortOrder names an ordering of the history view
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortAdversary SortOrder = "adversary"
	SortLevel     SortOrder = "level"
)

// SortOrders lists the accepted orders, default first
var SortOrders = []SortOrder{SortNewest, SortOldest, SortAdversary, SortLevel}

// ParseSortOrder accepts an order name; empty means newest
func ParseSortOrder(s string) (SortOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortNewest, nil
	}
	if slices.Contains(SortOrders, SortOrder(s)) {
		return SortOrder(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// Search keeps games whose adversary, player names or spirits contain term,
// ignoring case. An empty term keeps everything.
func Search(games []*models.Game, term string) []*models.Game {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return slices.Clone(games)
	}

	var found []*models.Game
	for _, g := range games {
		if matchesTerm(g, term) {
			found = append(found, g)
		}
	}
	return found
}

func matchesTerm(g *models.Game, term string) bool {
	if strings.Contains(strings.ToLower(g.Adversary.Name), term) {
		return true
	}
	for _, seat := range g.PlayersPlayed {
		if strings.Contains(strings.ToLower(seat.Player.Name), term) ||
			strings.Contains(strings.ToLower(seat.Spirit.String()), term) {
			return true
		}
	}
	return false
}

// Sort returns a stably sorted copy of games
func Sort(games []*models.Game, order SortOrder) []*models.Game {
	sorted := slices.Clone(games)

	var cmp func(a, b *models.Game) int
	switch order {
	case SortOldest:
		cmp = func(a, b *models.Game) int { return a.DatePlayed.Compare(b.DatePlayed) }
	case SortAdversary:
		cmp = func(a, b *models.Game) int { return strings.Compare(a.Adversary.Name, b.Adversary.Name) }
	case SortLevel:
		cmp = func(a, b *models.Game) int { return b.Adversary.Level - a.Adversary.Level }
	default:
		cmp = func(a, b *models.Game) int { return b.DatePlayed.Compare(a.DatePlayed) }
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}
