package tracker

// TrackerError is a custom error type for tracker errors
type TrackerError string

// Error implements the error interface
func (e TrackerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownPlayer     TrackerError = "unknown player"
	ErrUnknownSpirit     TrackerError = "unknown spirit"
	ErrUnknownAdversary  TrackerError = "unknown adversary"
	ErrInvalidLevel      TrackerError = "adversary level out of range"
	ErrInvalidComplexity TrackerError = "unknown complexity"
	ErrNoSeats           TrackerError = "at least one seat is required"
	ErrDuplicatePlayer   TrackerError = "player seated twice"
	ErrOutcomeRequired   TrackerError = "outcome is required"
	ErrPlayerExists      TrackerError = "player already exists"
	ErrInvalidPlayerName TrackerError = "player name cannot be blank"
	ErrMalformedImport   TrackerError = "malformed import: expected a JSON array of games"
	ErrNoCandidates      TrackerError = "no candidates to pick from"
	ErrNilConfig         TrackerError = "config cannot be nil"
	ErrNilGameRepo       TrackerError = "game repository cannot be nil"
	ErrNilPlayerRepo     TrackerError = "player repository cannot be nil"
	ErrNilCatalog        TrackerError = "catalog cannot be nil"
	ErrNilRandomizer     TrackerError = "randomizer cannot be nil"
	ErrNilClock          TrackerError = "clock cannot be nil"
)
