package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/f4hy/blightedisland/internal/dice"
	"github.com/f4hy/blightedisland/internal/models"
)

// service implements the Service interface
type service struct {
	roller dice.Roller
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	roller := config.Roller
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
	}, nil
}

// GetOutcomeMessage returns the banner and a flavor line for a recorded game
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	adversary := input.Adversary.DisplayName()
	var (
		messages []string
		tone     MessageTone
	)
	switch input.Outcome {
	case models.OutcomeWon:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("The island is healed. %s sails home empty-handed.", adversary),
			fmt.Sprintf("Terror level maxed! %s never saw it coming.", adversary),
			"The Dahan will sing about this one.",
			"Blight contained, invaders routed. Well played, spirits!",
		}
	case models.OutcomeLost:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%s wins this round. The island remembers.", adversary),
			"The blight card flipped. Shuffle up and try again!",
			"Every spirit has a bad season. Next time the fear deck runs out first.",
			"Lost, but the explorers won't be so lucky next time.",
		}
	case models.OutcomeDesync:
		tone = ToneFunny
		messages = []string{
			"Somebody forgot to advance the invader deck. Desync logged.",
			"Out of sync with reality. It happens to the best spirits.",
			"Game abandoned to the mists. No result, no shame.",
		}
	default:
		tone = ToneNeutral
		messages = []string{
			"Result pending. The island is still deciding.",
		}
	}

	return &GetOutcomeMessageOutput{
		Title:   input.Outcome.Headline(),
		Message: s.choose(messages),
		Tone:    tone,
	}, nil
}

// GetPickMessage returns the announcement for a randomizer pick
func (s *service) GetPickMessage(ctx context.Context, input *GetPickMessageInput) (*GetPickMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	title := "🎲 Your adversary"
	if input.Kind == PickSpirit {
		title = "🎲 Your spirit"
	}

	var message string
	switch {
	case input.Stats.Played == 0 && input.Weighted:
		message = s.choose([]string{
			fmt.Sprintf("**%s**, never played before. Time to fix that!", input.Label),
			fmt.Sprintf("**%s**. Fresh territory for the group.", input.Label),
		})
	case input.Stats.Played == 0:
		message = fmt.Sprintf("**%s**. No games recorded yet.", input.Label)
	case input.Stats.Total == 0:
		message = fmt.Sprintf("**%s**. Played %d times, no decided games yet.", input.Label, input.Stats.Played)
	default:
		message = fmt.Sprintf("**%s**. Record so far: %d-%d (%.1f%% win rate).",
			input.Label, input.Stats.Wins, input.Stats.Losses, input.Stats.WinRate)
	}

	return &GetPickMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetSummaryMessage returns a one-line take on the overall record
func (s *service) GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Games == 0 {
		return &GetSummaryMessageOutput{
			Message: "No games recorded yet. The island awaits!",
			Tone:    ToneNeutral,
		}, nil
	}

	record := fmt.Sprintf("%d games, %d wins, %d losses (%.1f%%).", input.Games, input.Wins, input.Losses, input.WinRate)
	switch {
	case input.Wins+input.Losses == 0:
		return &GetSummaryMessageOutput{Message: record, Tone: ToneNeutral}, nil
	case input.WinRate >= 60:
		return &GetSummaryMessageOutput{
			Message: record + " " + s.choose([]string{
				"Time to raise the adversary level.",
				"The invaders should be worried.",
			}),
			Tone: ToneCelebration,
		}, nil
	case input.WinRate < 40:
		return &GetSummaryMessageOutput{
			Message: record + " " + s.choose([]string{
				"The island needs you. Maybe try level 0?",
				"Rough seasons. Growth options exist for a reason.",
			}),
			Tone: ToneEncouraging,
		}, nil
	}
	return &GetSummaryMessageOutput{Message: record, Tone: ToneNeutral}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch input.ErrorType {
	case "unknown player":
		message = "I don't know that player. Add them with `/island addplayer` first."
	case "unknown spirit":
		message = "That spirit (or aspect) isn't on the roster."
	case "unknown adversary":
		message = "That adversary isn't on the roster."
	case "adversary level out of range":
		message = "Adversary levels run from 0 to 6."
	case "at least one seat is required":
		message = "A game needs at least one player seated."
	case "player seated twice":
		message = "Each player can only take one seat."
	case "outcome is required":
		message = "Pick an outcome: won, lost or desync."
	case "player already exists":
		message = "That player is already on the roster."
	case "player name cannot be blank":
		message = "Player names can't be blank."
	case "malformed import: expected a JSON array of games":
		message = "That file isn't an export. Expected a JSON array of games."
	default:
		message = s.choose([]string{
			"Something went wrong. The blight spreads...",
			"The spirits are confused. Please try again.",
		})
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}

func (s *service) choose(messages []string) string {
	return messages[dice.Index(s.roller, len(messages))]
}
