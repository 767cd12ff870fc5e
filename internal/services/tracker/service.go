package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/f4hy/blightedisland/internal/catalog"
	"github.com/f4hy/blightedisland/internal/common/clock"
	"github.com/f4hy/blightedisland/internal/export"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/randomizer"
	gameRepo "github.com/f4hy/blightedisland/internal/repositories/game"
	playerRepo "github.com/f4hy/blightedisland/internal/repositories/player"
	"github.com/f4hy/blightedisland/internal/stats"
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	catalog    *catalog.Catalog
	randomizer *randomizer.Randomizer
	clock      clock.Clock
}

// New creates a new tracker service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	if cfg.Randomizer == nil {
		return nil, ErrNilRandomizer
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		playerRepo: cfg.PlayerRepo,
		catalog:    cfg.Catalog,
		randomizer: cfg.Randomizer,
		clock:      cfg.Clock,
	}, nil
}

// GetCatalog returns the selectable adversaries, spirits and players
func (s *service) GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error) {
	players, err := s.ListPlayers(ctx, &ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	minLevel, maxLevel := s.catalog.LevelRange()
	return &GetCatalogOutput{
		Adversaries: s.catalog.AdversaryNames(),
		MinLevel:    minLevel,
		MaxLevel:    maxLevel,
		Spirits:     s.catalog.Spirits(""),
		Players:     players.Players,
	}, nil
}

// ListPlayers returns the static roster merged with stored players
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	stored, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		log.Printf("Error listing players: %v", err)
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	players := s.catalog.Players()
	for _, p := range stored.Players {
		if !slices.Contains(players, *p) {
			players = append(players, *p)
		}
	}
	slices.SortFunc(players, func(a, b models.Player) int {
		return strings.Compare(a.Name, b.Name)
	})

	return &ListPlayersOutput{Players: players}, nil
}

// AddPlayer adds a player unless the name is blank or already known
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrInvalidPlayerName
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidPlayerName
	}
	if s.catalog.HasPlayer(name) {
		return nil, ErrPlayerExists
	}

	output, err := s.playerRepo.AddPlayer(ctx, &playerRepo.AddPlayerInput{Name: name})
	switch {
	case errors.Is(err, playerRepo.ErrPlayerExists):
		return nil, ErrPlayerExists
	case errors.Is(err, playerRepo.ErrInvalidName):
		return nil, ErrInvalidPlayerName
	case err != nil:
		log.Printf("Error adding player %s: %v", name, err)
		return nil, fmt.Errorf("failed to add player: %w", err)
	}

	log.Printf("Added player %s", output.Player.Name)
	return &AddPlayerOutput{Player: *output.Player}, nil
}

// ListGames returns recorded games narrowed by the query and sorted
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	if input == nil {
		input = &ListGamesInput{}
	}

	games, warnings, err := s.loadGames(ctx)
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games:    history.Sort(applyQuery(games, input.Query), input.Sort),
		Warnings: warnings,
	}, nil
}

// RecordGame validates a draft against the catalog and saves it
func (s *service) RecordGame(ctx context.Context, input *RecordGameInput) (*RecordGameOutput, error) {
	if input == nil {
		return nil, ErrNoSeats
	}
	game, err := s.buildGame(ctx, &input.Draft)
	if err != nil {
		return nil, err
	}

	output, err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game})
	if err != nil {
		log.Printf("Error recording game: %v", err)
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	log.Printf("Recorded %s game against %s on %s", game.Outcome, game.Adversary.Label(), game.DatePlayed)
	return &RecordGameOutput{
		Game: game,
		Path: output.Path,
	}, nil
}

func (s *service) buildGame(ctx context.Context, draft *GameDraft) (*models.Game, error) {
	adversaryName := strings.TrimSpace(draft.AdversaryName)
	if !s.catalog.HasAdversary(adversaryName) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdversary, draft.AdversaryName)
	}
	if !s.catalog.ValidLevel(draft.AdversaryLevel) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, draft.AdversaryLevel)
	}
	if len(draft.Seats) == 0 {
		return nil, ErrNoSeats
	}
	if !draft.Outcome.IsDecided() && draft.Outcome != models.OutcomeDesync {
		return nil, ErrOutcomeRequired
	}

	known, err := s.ListPlayers(ctx, &ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	seats := make([]models.PlayerSpirit, 0, len(draft.Seats))
	seen := make(map[string]bool, len(draft.Seats))
	for _, seat := range draft.Seats {
		player := models.Player{Name: strings.TrimSpace(seat.Player)}
		if !slices.Contains(known.Players, player) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, seat.Player)
		}
		if seen[player.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, player.Name)
		}
		seen[player.Name] = true

		spirit, ok := s.catalog.FindSpirit(seat.Spirit, seat.Aspect)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpirit, models.Spirit{Name: seat.Spirit, Aspect: seat.Aspect}.String())
		}
		seats = append(seats, models.PlayerSpirit{Player: player, Spirit: spirit})
	}

	date := draft.DatePlayed
	if date.IsZero() {
		date = clock.Today(s.clock)
	}

	game := &models.Game{
		DatePlayed:    date,
		Adversary:     models.Adversary{Name: adversaryName, Level: draft.AdversaryLevel},
		PlayersPlayed: seats,
		Outcome:       draft.Outcome,
		Notes:         strings.TrimSpace(draft.Notes),
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	return game, nil
}

// GetStats aggregates filtered games by one dimension
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		input = &GetStatsInput{}
	}
	group := input.Group
	if group == "" {
		group = stats.GroupAdversary
	}

	games, warnings, err := s.loadGames(ctx)
	if err != nil {
		return nil, err
	}
	games = applyQuery(games, input.Query)

	return &GetStatsOutput{
		Group:    group,
		Rows:     stats.Rows(stats.Aggregate(games, group)),
		Summary:  stats.Summarize(games),
		Trend:    stats.Trend(games),
		Warnings: warnings,
	}, nil
}

// ExportStatsWorkbook renders filtered statistics as XLSX
func (s *service) ExportStatsWorkbook(ctx context.Context, input *ExportStatsWorkbookInput) (*ExportStatsWorkbookOutput, error) {
	if input == nil {
		input = &ExportStatsWorkbookInput{}
	}

	games, _, err := s.loadGames(ctx)
	if err != nil {
		return nil, err
	}

	data, err := export.Workbook(applyQuery(games, input.Query))
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	return &ExportStatsWorkbookOutput{
		Filename: export.Filename(s.clock.Now()),
		Data:     data,
	}, nil
}

// PickAdversary picks an adversary and reports its record at that level.
// When history cannot be loaded the pick is uniform and carries a warning.
func (s *service) PickAdversary(ctx context.Context, input *PickAdversaryInput) (*PickAdversaryOutput, error) {
	if input == nil {
		return nil, ErrInvalidLevel
	}
	if !s.catalog.ValidLevel(input.Level) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, input.Level)
	}

	games, warnings := s.pickHistory(ctx)

	var adversary models.Adversary
	var err error
	if input.Weighted {
		adversary, err = s.randomizer.PickAdversary(input.Level, games)
	} else {
		adversary, err = s.randomizer.RandomAdversary(input.Level)
	}
	if err != nil {
		return nil, mapRandomizerError(err)
	}

	return &PickAdversaryOutput{
		Adversary: adversary,
		Stats:     stats.Lookup(games, stats.GroupAdversary, adversary.Label()),
		Warnings:  warnings,
	}, nil
}

// PickSpirit picks a spirit and reports its record
func (s *service) PickSpirit(ctx context.Context, input *PickSpiritInput) (*PickSpiritOutput, error) {
	if input == nil {
		input = &PickSpiritInput{}
	}
	if input.Complexity != "" && !input.Complexity.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidComplexity, input.Complexity)
	}

	games, warnings := s.pickHistory(ctx)

	var spirit models.Spirit
	var err error
	if input.Weighted {
		spirit, err = s.randomizer.PickSpirit(games, input.Complexity)
	} else {
		spirit, err = s.randomizer.RandomSpirit(input.Complexity)
	}
	if err != nil {
		return nil, mapRandomizerError(err)
	}

	return &PickSpiritOutput{
		Spirit:   spirit,
		Stats:    stats.Lookup(games, stats.GroupSpirit, spirit.String()),
		Warnings: warnings,
	}, nil
}

// ExportGames renders filtered games, newest first, as an export document
func (s *service) ExportGames(ctx context.Context, input *ExportGamesInput) (*ExportGamesOutput, error) {
	if input == nil {
		input = &ExportGamesInput{}
	}

	games, _, err := s.loadGames(ctx)
	if err != nil {
		return nil, err
	}

	output, err := s.gameRepo.ExportGames(ctx, &gameRepo.ExportGamesInput{
		Games: applyQuery(games, input.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export games: %w", err)
	}

	return &ExportGamesOutput{
		Filename: output.Filename,
		Data:     output.Data,
	}, nil
}

// ImportGames saves every valid record of an export document
func (s *service) ImportGames(ctx context.Context, input *ImportGamesInput) (*ImportGamesOutput, error) {
	if input == nil {
		return nil, ErrMalformedImport
	}

	output, err := s.gameRepo.ImportGames(ctx, &gameRepo.ImportGamesInput{Data: input.Data})
	if errors.Is(err, gameRepo.ErrMalformedImport) {
		return nil, ErrMalformedImport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to import games: %w", err)
	}

	failures := make([]string, 0, len(output.Failures))
	for _, f := range output.Failures {
		failures = append(failures, fmt.Sprintf("record %d: %v", f.Index+1, f.Err))
	}

	return &ImportGamesOutput{
		Imported: output.Imported,
		Failed:   output.Failed,
		Failures: failures,
	}, nil
}

// loadGames returns the stored history and a warning per skipped record
func (s *service) loadGames(ctx context.Context) ([]*models.Game, []string, error) {
	output, err := s.gameRepo.ListGames(ctx, &gameRepo.ListGamesInput{})
	if err != nil {
		log.Printf("Error loading games: %v", err)
		return nil, nil, fmt.Errorf("failed to load games: %w", err)
	}

	var warnings []string
	for _, skipped := range output.Skipped {
		warnings = append(warnings, fmt.Sprintf("unable to parse %s: %v", skipped.Path, skipped.Err))
	}
	return output.Games, warnings, nil
}

// pickHistory loads games for weighting. A storage fault becomes a warning
// and an empty history, which the randomizer treats as uniform.
func (s *service) pickHistory(ctx context.Context) ([]*models.Game, []string) {
	games, warnings, err := s.loadGames(ctx)
	if err != nil {
		return nil, []string{fmt.Sprintf("history unavailable, pick is uniform: %v", err)}
	}
	return games, warnings
}

func applyQuery(games []*models.Game, q Query) []*models.Game {
	return history.Search(history.Filter(games, q.Criteria), q.Search)
}

func mapRandomizerError(err error) error {
	switch {
	case errors.Is(err, randomizer.ErrInvalidLevel):
		return ErrInvalidLevel
	case errors.Is(err, randomizer.ErrNoCandidates):
		return ErrNoCandidates
	}
	return err
}

// AsTrackerError extracts the TrackerError behind err, if any
func AsTrackerError(err error) (TrackerError, bool) {
	var te TrackerError
	if errors.As(err, &te) {
		return te, true
	}
	return "", false
}
