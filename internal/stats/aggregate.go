package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/models"
)

// GroupKey selects the dimension games are grouped by
type GroupKey string

const (
	// GroupAdversary groups by adversary name and level
	GroupAdversary GroupKey = "adversary"

	// GroupSpirit groups by spirit and aspect, once per seat
	GroupSpirit GroupKey = "spirit"

	// GroupSpiritBase groups aspects with their base spirit, once per seat
	GroupSpiritBase GroupKey = "spirit_base"

	// GroupPlayer groups by player name, once per seat
	GroupPlayer GroupKey = "player"
)

// GroupKeys lists the accepted keys, default first
var GroupKeys = []GroupKey{GroupAdversary, GroupSpirit, GroupSpiritBase, GroupPlayer}

// ParseGroupKey accepts a key name; empty means adversary
func ParseGroupKey(s string) (GroupKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GroupAdversary, nil
	}
	if slices.Contains(GroupKeys, GroupKey(s)) {
		return GroupKey(s), nil
	}
	return "", fmt.Errorf("unknown group %q", s)
}

// Labels returns the group labels a game contributes to under key
func Labels(g *models.Game, key GroupKey) []string {
	switch key {
	case GroupAdversary:
		return []string{g.Adversary.Label()}
	case GroupSpirit:
		labels := make([]string, 0, len(g.PlayersPlayed))
		for _, seat := range g.PlayersPlayed {
			labels = append(labels, seat.Spirit.String())
		}
		return labels
	case GroupSpiritBase:
		labels := make([]string, 0, len(g.PlayersPlayed))
		for _, seat := range g.PlayersPlayed {
			labels = append(labels, seat.Spirit.Name)
		}
		return labels
	case GroupPlayer:
		return g.PlayerNames()
	}
	return nil
}

// Aggregate tallies wins and losses per group. Desynced and pending games
// count toward Played only.
func Aggregate(games []*models.Game, key GroupKey) map[string]*models.GroupStats {
	groups := make(map[string]*models.GroupStats)
	for _, g := range games {
		for _, label := range Labels(g, key) {
			s, ok := groups[label]
			if !ok {
				s = &models.GroupStats{}
				groups[label] = s
			}
			s.Record(g.Outcome)
		}
	}
	return groups
}

// Lookup returns the record of one group, zero if it never played
func Lookup(games []*models.Game, key GroupKey, label string) models.GroupStats {
	var s models.GroupStats
	for _, g := range games {
		for _, l := range Labels(g, key) {
			if l == label {
				s.Record(g.Outcome)
			}
		}
	}
	return s
}

// Row is one line of a statistics table
type Row struct {
	Label string `json:"label"`
	models.GroupStats
}

// Rows flattens an aggregate into table order: win rate descending, then
// total descending, then label
func Rows(groups map[string]*models.GroupStats) []Row {
	rows := make([]Row, 0, len(groups))
	for label, s := range groups {
		rows = append(rows, Row{Label: label, GroupStats: *s})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(b.WinRate, a.WinRate); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Label, b.Label)
	})
	return rows
}
