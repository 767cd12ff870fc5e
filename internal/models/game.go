package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGame is wrapped by every game validation failure
var ErrInvalidGame = errors.New("invalid game")

// PlayerSpirit records which player played which spirit in one seat
type PlayerSpirit struct {
	// Player is the person in the seat
	Player Player `json:"player"`

	// Spirit is the spirit that seat played
	Spirit Spirit `json:"spirit"`
}

// Game represents a single recorded Spirit Island session
type Game struct {
	// DatePlayed is the day the session took place
	DatePlayed Date

	// Adversary is the adversary and level faced
	Adversary Adversary

	// PlayersPlayed holds one entry per seat in seat order
	PlayersPlayed []PlayerSpirit

	// Outcome is how the game ended
	Outcome Outcome

	// Notes holds optional free-form observations
	Notes string
}

// wireGame is the persisted record format shared with other tools
type wireGame struct {
	DatePlayed    *Date          `json:"date_played"`
	Adversary     *Adversary     `json:"adversary"`
	PlayersPlayed []PlayerSpirit `json:"players_played"`
	Won           *bool          `json:"won"`
	Desync        *bool          `json:"desync"`
	Notes         *string        `json:"notes"`
}

// MarshalJSON writes the canonical record. Field order is fixed, so equal
// games always encode to identical bytes.
func (g Game) MarshalJSON() ([]byte, error) {
	date := g.DatePlayed
	adversary := g.Adversary
	w := wireGame{
		DatePlayed:    &date,
		Adversary:     &adversary,
		PlayersPlayed: g.PlayersPlayed,
	}
	if w.PlayersPlayed == nil {
		w.PlayersPlayed = []PlayerSpirit{}
	}
	w.Won, w.Desync = g.Outcome.wireFlags()
	if g.Notes != "" {
		notes := g.Notes
		w.Notes = &notes
	}
	return json.Marshal(w)
}

// UnmarshalJSON reads a record. A missing date_played is left zero; use
// DecodeGame to default it and validate the result.
func (g *Game) UnmarshalJSON(data []byte) error {
	var w wireGame
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Adversary == nil {
		return fmt.Errorf("%w: adversary is required", ErrInvalidGame)
	}
	if w.PlayersPlayed == nil {
		return fmt.Errorf("%w: players_played is required", ErrInvalidGame)
	}
	outcome, err := outcomeFromFlags(w.Won, w.Desync)
	if err != nil {
		return err
	}

	*g = Game{
		Adversary:     *w.Adversary,
		PlayersPlayed: w.PlayersPlayed,
		Outcome:       outcome,
	}
	if w.DatePlayed != nil {
		g.DatePlayed = *w.DatePlayed
	}
	if w.Notes != nil {
		g.Notes = *w.Notes
	}
	return nil
}

// DecodeGame parses and validates a single record, defaulting a missing
// date_played to today.
func DecodeGame(data []byte, today Date) (*Game, error) {
	var game Game
	if err := json.Unmarshal(data, &game); err != nil {
		if errors.Is(err, ErrInvalidGame) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidGame, err)
	}
	if game.DatePlayed.IsZero() {
		game.DatePlayed = today
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	return &game, nil
}

// Validate checks the structural invariants of a record
func (g *Game) Validate() error {
	if g.DatePlayed.IsZero() {
		return fmt.Errorf("%w: date_played is required", ErrInvalidGame)
	}
	if strings.TrimSpace(g.Adversary.Name) == "" {
		return fmt.Errorf("%w: adversary name is required", ErrInvalidGame)
	}
	if !ValidLevel(g.Adversary.Level) {
		return fmt.Errorf("%w: adversary level %d outside %d-%d", ErrInvalidGame, g.Adversary.Level, MinAdversaryLevel, MaxAdversaryLevel)
	}
	if len(g.PlayersPlayed) == 0 {
		return fmt.Errorf("%w: at least one seat is required", ErrInvalidGame)
	}
	for i, seat := range g.PlayersPlayed {
		if strings.TrimSpace(seat.Player.Name) == "" {
			return fmt.Errorf("%w: seat %d has no player", ErrInvalidGame, i+1)
		}
		if strings.TrimSpace(seat.Spirit.Name) == "" {
			return fmt.Errorf("%w: seat %d has no spirit", ErrInvalidGame, i+1)
		}
		if !seat.Spirit.Complexity.Valid() {
			return fmt.Errorf("%w: seat %d has unknown complexity %q", ErrInvalidGame, i+1, seat.Spirit.Complexity)
		}
	}
	switch g.Outcome {
	case OutcomeWon, OutcomeLost, OutcomeDesync, OutcomePending:
	default:
		return fmt.Errorf("%w: unknown outcome %q", ErrInvalidGame, g.Outcome)
	}
	return nil
}

// PlayerCount returns the number of seats
func (g *Game) PlayerCount() int {
	return len(g.PlayersPlayed)
}

// HasPlayer reports whether p sat at this game
func (g *Game) HasPlayer(p Player) bool {
	for _, seat := range g.PlayersPlayed {
		if seat.Player == p {
			return true
		}
	}
	return false
}

// PlayerNames returns the seated player names in seat order
func (g *Game) PlayerNames() []string {
	names := make([]string, 0, len(g.PlayersPlayed))
	for _, seat := range g.PlayersPlayed {
		names = append(names, seat.Player.Name)
	}
	return names
}
