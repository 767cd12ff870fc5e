package stats

import (
	"slices"

	"github.com/f4hy/blightedisland/internal/models"
)

// Summary is the headline record across all games
type Summary struct {
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	Desyncs int     `json:"desyncs"`
	Pending int     `json:"pending"`
	WinRate float64 `json:"win_rate"`
}

// Summarize counts outcomes across games
func Summarize(games []*models.Game) Summary {
	var s Summary
	for _, g := range games {
		s.Games++
		switch g.Outcome {
		case models.OutcomeWon:
			s.Wins++
		case models.OutcomeLost:
			s.Losses++
		case models.OutcomeDesync:
			s.Desyncs++
		default:
			s.Pending++
		}
	}
	s.WinRate = models.WinRate(s.Wins, s.Losses)
	return s
}

// TrendPoint is the cumulative record after one game
type TrendPoint struct {
	Date    models.Date `json:"date"`
	Wins    int         `json:"wins"`
	Losses  int         `json:"losses"`
	WinRate float64     `json:"win_rate"`
}

// Trend returns the running win rate in chronological order, one point per game
func Trend(games []*models.Game) []TrendPoint {
	ordered := slices.Clone(games)
	slices.SortStableFunc(ordered, func(a, b *models.Game) int {
		return a.DatePlayed.Compare(b.DatePlayed)
	})

	points := make([]TrendPoint, 0, len(ordered))
	wins, losses := 0, 0
	for _, g := range ordered {
		switch g.Outcome {
		case models.OutcomeWon:
			wins++
		case models.OutcomeLost:
			losses++
		}
		points = append(points, TrendPoint{
			Date:    g.DatePlayed,
			Wins:    wins,
			Losses:  losses,
			WinRate: models.WinRate(wins, losses),
		})
	}
	return points
}
