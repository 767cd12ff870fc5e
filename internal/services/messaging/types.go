package messaging

import (
	"github.com/f4hy/blightedisland/internal/dice"
	"github.com/f4hy/blightedisland/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// PickKind names what the randomizer picked
type PickKind string

const (
	PickAdversary PickKind = "adversary"
	PickSpirit    PickKind = "spirit"
)

// GetOutcomeMessageInput contains parameters for an outcome message
type GetOutcomeMessageInput struct {
	Outcome   models.Outcome
	Adversary models.Adversary
}

// GetOutcomeMessageOutput contains the outcome banner and flavor text
type GetOutcomeMessageOutput struct {
	// Title is the outcome headline, e.g. "WON! 🎉"
	Title string

	Message string
	Tone    MessageTone
}

// GetPickMessageInput contains parameters for a pick announcement
type GetPickMessageInput struct {
	Kind PickKind

	// Label is the rendered pick, e.g. "England (Lvl 3)"
	Label string

	// Stats is the picked entity's record so far
	Stats models.GroupStats

	// Weighted is set when history influenced the pick
	Weighted bool
}

// GetPickMessageOutput contains a pick announcement
type GetPickMessageOutput struct {
	Title   string
	Message string
}

// GetSummaryMessageInput contains the overall record
type GetSummaryMessageInput struct {
	Games   int
	Wins    int
	Losses  int
	WinRate float64
}

// GetSummaryMessageOutput contains the summary line
type GetSummaryMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error, usually a tracker error string
	ErrorType string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller selects among message variants
	Roller dice.Roller
}
