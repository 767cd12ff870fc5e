package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/f4hy/blightedisland/internal/services/tracker Service

import "context"

// Service defines the operations every presentation surface uses
type Service interface {
	// GetCatalog returns the selectable adversaries, spirits and players
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)

	// ListPlayers returns the roster plus players added at runtime
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// AddPlayer adds a player to the runtime roster
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// ListGames returns recorded games narrowed by filters, search and sort order
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// RecordGame validates a draft against the catalog and saves it
	RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error)

	// GetStats aggregates filtered games by one dimension
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// ExportStatsWorkbook renders filtered statistics as XLSX
	ExportStatsWorkbook(ctx context.Context, input *ExportStatsWorkbookInput) (*ExportStatsWorkbookOutput, error)

	// PickAdversary picks an adversary for the next session
	PickAdversary(ctx context.Context, input *PickAdversaryInput) (*PickAdversaryOutput, error)

	// PickSpirit picks a spirit for the next session
	PickSpirit(ctx context.Context, input *PickSpiritInput) (*PickSpiritOutput, error)

	// ExportGames renders filtered games as an import-compatible document
	ExportGames(ctx context.Context, input *ExportGamesInput) (*ExportGamesOutput, error)

	// ImportGames saves every valid record of an export document
	ImportGames(ctx context.Context, input *ImportGamesInput) (*ImportGamesOutput, error)
}
