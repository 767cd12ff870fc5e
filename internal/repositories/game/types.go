package game

import "github.com/f4hy/blightedisland/internal/models"

type ListGamesInput struct {
}

type ListGamesOutput struct {
	Games []*models.Game

	// Skipped lists blobs that could not be decoded
	Skipped []SkippedRecord
}

// SkippedRecord names a stored blob that failed validation
type SkippedRecord struct {
	Path string
	Err  error
}

type SaveGameInput struct {
	Game *models.Game
}

type SaveGameOutput struct {
	// Path is the blob the game was written to
	Path string
}

type ImportGamesInput struct {
	// Data is a JSON array of game records
	Data []byte
}

type ImportGamesOutput struct {
	Imported int
	Failed   int
	Failures []ImportFailure
}

// ImportFailure reports why one element of an import was not saved
type ImportFailure struct {
	// Index is the zero-based position in the imported array
	Index int
	Err   error
}

type ExportGamesInput struct {
	Games []*models.Game
}

type ExportGamesOutput struct {
	Filename string
	Data     []byte
}
