package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetOutcomeMessage returns the banner and a flavor line for a recorded game
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)

	// GetPickMessage returns the announcement for a randomizer pick
	GetPickMessage(ctx context.Context, input *GetPickMessageInput) (*GetPickMessageOutput, error)

	// GetSummaryMessage returns a one-line take on the overall record
	GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
