package tracker

import (
	"github.com/f4hy/blightedisland/internal/catalog"
	"github.com/f4hy/blightedisland/internal/common/clock"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/randomizer"
	gameRepo "github.com/f4hy/blightedisland/internal/repositories/game"
	playerRepo "github.com/f4hy/blightedisland/internal/repositories/player"
	"github.com/f4hy/blightedisland/internal/stats"
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository

	// Catalog holds the static rosters
	Catalog *catalog.Catalog

	// Randomizer draws adversaries and spirits
	Randomizer *randomizer.Randomizer

	// Clock supplies today's date and export timestamps
	Clock clock.Clock
}

type GetCatalogInput struct {
}

type GetCatalogOutput struct {
	Adversaries []string
	MinLevel    int
	MaxLevel    int
	Spirits     []models.Spirit
	Players     []models.Player
}

type ListPlayersInput struct {
}

type ListPlayersOutput struct {
	Players []models.Player
}

type AddPlayerInput struct {
	Name string
}

type AddPlayerOutput struct {
	Player models.Player
}

// Query narrows the game history
type Query struct {
	Criteria history.Criteria

	// Search is a free-text term over adversary, players and spirits
	Search string
}

type ListGamesInput struct {
	Query Query
	Sort  history.SortOrder
}

type ListGamesOutput struct {
	Games []*models.Game

	// Warnings describes stored records that could not be loaded
	Warnings []string
}

// SeatDraft is one seat of a game being recorded
type SeatDraft struct {
	Player string
	Spirit string
	Aspect string
}

// GameDraft is a game as entered by a user, before catalog validation
type GameDraft struct {
	// DatePlayed defaults to today when zero
	DatePlayed models.Date

	AdversaryName  string
	AdversaryLevel int
	Seats          []SeatDraft
	Outcome        models.Outcome
	Notes          string
}

type RecordGameInput struct {
	Draft GameDraft
}

type RecordGameOutput struct {
	Game *models.Game

	// Path is the blob the game was written to
	Path string
}

type GetStatsInput struct {
	Query Query
	Group stats.GroupKey
}

type GetStatsOutput struct {
	Group    stats.GroupKey
	Rows     []stats.Row
	Summary  stats.Summary
	Trend    []stats.TrendPoint
	Warnings []string
}

type ExportStatsWorkbookInput struct {
	Query Query
}

type ExportStatsWorkbookOutput struct {
	Filename string
	Data     []byte
}

type PickAdversaryInput struct {
	Level int

	// Weighted favors adversaries played least at Level
	Weighted bool
}

type PickAdversaryOutput struct {
	Adversary models.Adversary

	// Stats is the record of the picked adversary at its level
	Stats models.GroupStats

	// Warnings describes history that could not be loaded
	Warnings []string
}

type PickSpiritInput struct {
	// Complexity restricts the pool when set
	Complexity models.Complexity

	// Weighted favors base spirits played least
	Weighted bool
}

type PickSpiritOutput struct {
	Spirit models.Spirit

	// Stats is the record of the picked spirit and aspect
	Stats models.GroupStats

	// Warnings describes history that could not be loaded
	Warnings []string
}

type ExportGamesInput struct {
	Query Query
}

type ExportGamesOutput struct {
	Filename string
	Data     []byte
}

type ImportGamesInput struct {
	Data []byte
}

type ImportGamesOutput struct {
	Imported int
	Failed   int

	// Failures describes each rejected record
	Failures []string
}
