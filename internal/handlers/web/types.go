package web

import (
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/stats"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type catalogResponse struct {
	Adversaries []string        `json:"adversaries"`
	MinLevel    int             `json:"min_level"`
	MaxLevel    int             `json:"max_level"`
	Spirits     []models.Spirit `json:"spirits"`
	Players     []models.Player `json:"players"`
}

type playersResponse struct {
	Players []models.Player `json:"players"`
}

type addPlayerRequest struct {
	Name string `json:"name"`
}

type gamesResponse struct {
	Games    []*models.Game `json:"games"`
	Warnings []string       `json:"warnings"`
}

type seatRequest struct {
	Player string `json:"player"`
	Spirit string `json:"spirit"`
	Aspect string `json:"aspect"`
}

// recordGameRequest is a game draft. DatePlayed defaults to today when empty.
type recordGameRequest struct {
	DatePlayed string        `json:"date_played"`
	Adversary  string        `json:"adversary"`
	Level      int           `json:"level"`
	Seats      []seatRequest `json:"seats"`
	Outcome    string        `json:"outcome"`
	Notes      string        `json:"notes"`
}

type recordGameResponse struct {
	Game    *models.Game `json:"game"`
	Path    string       `json:"path"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
}

type statsResponse struct {
	Group    stats.GroupKey     `json:"group"`
	Rows     []stats.Row        `json:"rows"`
	Summary  stats.Summary      `json:"summary"`
	Trend    []stats.TrendPoint `json:"trend"`
	Message  string             `json:"message"`
	Warnings []string           `json:"warnings"`
}

type pickAdversaryResponse struct {
	Adversary models.Adversary  `json:"adversary"`
	Label     string            `json:"label"`
	Stats     models.GroupStats `json:"stats"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Warnings  []string          `json:"warnings"`
}

type pickSpiritResponse struct {
	Spirit   models.Spirit     `json:"spirit"`
	Label    string            `json:"label"`
	Stats    models.GroupStats `json:"stats"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Warnings []string          `json:"warnings"`
}

type importResponse struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Failures []string `json:"failures"`
}
