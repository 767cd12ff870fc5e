package models

import "math"

// GroupStats holds the win/loss record of one statistics group
type GroupStats struct {
	// Wins is the number of won games
	Wins int `json:"wins"`

	// Losses is the number of lost games
	Losses int `json:"losses"`

	// Total is Wins + Losses. Desyncs and pending games are not counted.
	Total int `json:"total"`

	// Played is every game assigned to the group, whatever its outcome
	Played int `json:"played"`

	// WinRate is Wins/Total as a percentage rounded to one decimal
	WinRate float64 `json:"win_rate"`
}

// Record adds one game outcome to the group
func (s *GroupStats) Record(outcome Outcome) {
	s.Played++
	switch outcome {
	case OutcomeWon:
		s.Wins++
	case OutcomeLost:
		s.Losses++
	}
	s.Total = s.Wins + s.Losses
	s.WinRate = WinRate(s.Wins, s.Losses)
}

// WinRate returns wins/(wins+losses) as a percentage rounded to one decimal, or 0
func WinRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}
