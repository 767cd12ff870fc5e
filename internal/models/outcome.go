package models

import (
	"fmt"
	"strings"
)

// Outcome represents how a recorded game ended
type Outcome string

const (
	// OutcomeWon indicates the players defeated the invaders
	OutcomeWon Outcome = "won"

	// OutcomeLost indicates the invaders won
	OutcomeLost Outcome = "lost"

	// OutcomeDesync indicates the session ended without a definite result
	OutcomeDesync Outcome = "desync"

	// OutcomePending indicates no result has been entered yet
	OutcomePending Outcome = "pending"
)

// ParseOutcome parses an outcome label. "win" and "loss" are accepted as aliases.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "won", "win":
		return OutcomeWon, nil
	case "lost", "loss":
		return OutcomeLost, nil
	case "desync":
		return OutcomeDesync, nil
	case "pending", "":
		return OutcomePending, nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

// IsDecided reports whether the game ended in a win or a loss
func (o Outcome) IsDecided() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Icon returns the short marker used in history listings
func (o Outcome) Icon() string {
	switch o {
	case OutcomeWon:
		return "🏆"
	case OutcomeLost:
		return "❌"
	default:
		return "⚠️"
	}
}

// Headline returns the result banner shown for a single game
func (o Outcome) Headline() string {
	switch o {
	case OutcomeWon:
		return "WON! 🎉"
	case OutcomeLost:
		return "Lost 😢"
	case OutcomeDesync:
		return "Desync ⚠️"
	default:
		return "Pending ⏳"
	}
}

// wireFlags returns the legacy won/desync pair persisted for the outcome
func (o Outcome) wireFlags() (won *bool, desync *bool) {
	t, f := true, false
	switch o {
	case OutcomeWon:
		return &t, &f
	case OutcomeLost:
		return &f, &f
	case OutcomeDesync:
		return nil, &t
	}
	return nil, nil
}

// outcomeFromFlags maps the legacy won/desync pair onto an Outcome
func outcomeFromFlags(won, desync *bool) (Outcome, error) {
	if desync != nil && *desync {
		if won != nil {
			return "", fmt.Errorf("%w: won and desync are both set", ErrInvalidGame)
		}
		return OutcomeDesync, nil
	}
	if won == nil {
		return OutcomePending, nil
	}
	if *won {
		return OutcomeWon, nil
	}
	return OutcomeLost, nil
}
