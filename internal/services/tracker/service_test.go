package tracker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/f4hy/blightedisland/internal/catalog"
	clockMocks "github.com/f4hy/blightedisland/internal/common/clock/mocks"
	diceMocks "github.com/f4hy/blightedisland/internal/dice/mocks"
	"github.com/f4hy/blightedisland/internal/history"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/f4hy/blightedisland/internal/randomizer"
	gameRepo "github.com/f4hy/blightedisland/internal/repositories/game"
	gameMocks "github.com/f4hy/blightedisland/internal/repositories/game/mocks"
	playerRepo "github.com/f4hy/blightedisland/internal/repositories/player"
	playerMocks "github.com/f4hy/blightedisland/internal/repositories/player/mocks"
	"github.com/f4hy/blightedisland/internal/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TrackerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockDiceRoller *diceMocks.MockRoller
	mockClock      *clockMocks.MockClock
	trackerService Service
	ctx            context.Context

	// Test data
	testTime  time.Time
	testToday models.Date
	history   []*models.Game
}

func (s *TrackerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testToday = models.Date{Year: 2025, Month: 4, Day: 19}
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	cat, err := catalog.Default()
	s.Require().NoError(err)
	r, err := randomizer.New(&randomizer.Config{Catalog: cat, Roller: s.mockDiceRoller})
	s.Require().NoError(err)

	s.trackerService, err = New(&Config{
		GameRepo:   s.mockGameRepo,
		PlayerRepo: s.mockPlayerRepo,
		Catalog:    cat,
		Randomizer: r,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)

	thunder := models.Spirit{Name: "Thunderspeaker", Complexity: models.ComplexityModerate}
	river := models.Spirit{Name: "River Surges in Sunlight", Complexity: models.ComplexityLow, Aspect: "Travel"}
	s.history = []*models.Game{
		{
			DatePlayed:    models.Date{Year: 2025, Month: 3, Day: 3},
			Adversary:     models.Adversary{Name: "England", Level: 3},
			PlayersPlayed: []models.PlayerSpirit{{Player: models.Player{Name: "Kyle"}, Spirit: thunder}, {Player: models.Player{Name: "Bill"}, Spirit: river}},
			Outcome:       models.OutcomeWon,
		},
		{
			DatePlayed:    models.Date{Year: 2025, Month: 3, Day: 2},
			Adversary:     models.Adversary{Name: "England", Level: 3},
			PlayersPlayed: []models.PlayerSpirit{{Player: models.Player{Name: "Kyle"}, Spirit: thunder}},
			Outcome:       models.OutcomeLost,
		},
		{
			DatePlayed:    models.Date{Year: 2025, Month: 3, Day: 1},
			Adversary:     models.Adversary{Name: "Sweden", Level: 2},
			PlayersPlayed: []models.PlayerSpirit{{Player: models.Player{Name: "Linda"}, Spirit: river}},
			Outcome:       models.OutcomeWon,
		},
	}
}

func (s *TrackerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTrackerServiceSuite(t *testing.T) {
	suite.Run(t, new(TrackerServiceTestSuite))
}

func (s *TrackerServiceTestSuite) expectHistory() {
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{Games: s.history}, nil)
}

func (s *TrackerServiceTestSuite) expectStoredPlayers(names ...string) {
	players := make([]*models.Player, 0, len(names))
	for _, n := range names {
		players = append(players, &models.Player{Name: n})
	}
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, gomock.Any()).
		Return(&playerRepo.ListPlayersOutput{Players: players}, nil)
}

func (s *TrackerServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilGameRepo, err)

	_, err = New(&Config{GameRepo: s.mockGameRepo})
	s.Equal(ErrNilPlayerRepo, err)
}

func (s *TrackerServiceTestSuite) TestListPlayers_MergesRoster() {
	s.expectStoredPlayers("Ada", "Kyle")

	output, err := s.trackerService.ListPlayers(s.ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(output.Players, 10)
	s.Equal("Ada", output.Players[0].Name)
	s.Equal("Bill", output.Players[1].Name)
}

func (s *TrackerServiceTestSuite) TestAddPlayer() {
	s.mockPlayerRepo.EXPECT().
		AddPlayer(s.ctx, &playerRepo.AddPlayerInput{Name: "Ada"}).
		Return(&playerRepo.AddPlayerOutput{Player: &models.Player{Name: "Ada"}}, nil)

	output, err := s.trackerService.AddPlayer(s.ctx, &AddPlayerInput{Name: " Ada "})
	s.Require().NoError(err)
	s.Equal(models.Player{Name: "Ada"}, output.Player)
}

func (s *TrackerServiceTestSuite) TestAddPlayer_Rejected() {
	_, err := s.trackerService.AddPlayer(s.ctx, &AddPlayerInput{Name: "   "})
	s.ErrorIs(err, ErrInvalidPlayerName)

	_, err = s.trackerService.AddPlayer(s.ctx, &AddPlayerInput{Name: "Kyle"})
	s.ErrorIs(err, ErrPlayerExists)

	s.mockPlayerRepo.EXPECT().
		AddPlayer(s.ctx, gomock.Any()).
		Return(nil, playerRepo.ErrPlayerExists)
	_, err = s.trackerService.AddPlayer(s.ctx, &AddPlayerInput{Name: "Ada"})
	s.ErrorIs(err, ErrPlayerExists)
}

func (s *TrackerServiceTestSuite) TestListGames_FilterSearchSort() {
	s.expectHistory()

	output, err := s.trackerService.ListGames(s.ctx, &ListGamesInput{
		Query: Query{Criteria: history.Criteria{AdversaryName: "England"}, Search: "bill"},
		Sort:  history.SortOldest,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal(s.history[0], output.Games[0])
}

func (s *TrackerServiceTestSuite) TestListGames_ReportsSkipped() {
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{
			Games:   s.history,
			Skipped: []gameRepo.SkippedRecord{{Path: "recorded_games/bad.json", Err: errors.New("boom")}},
		}, nil)

	output, err := s.trackerService.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Len(output.Games, 3)
	s.Equal([]string{"unable to parse recorded_games/bad.json: boom"}, output.Warnings)
}

func (s *TrackerServiceTestSuite) TestListGames_StorageFault() {
	fault := errors.New("connection refused")
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{}, fault)

	_, err := s.trackerService.ListGames(s.ctx, &ListGamesInput{})
	s.ErrorIs(err, fault)
}

func (s *TrackerServiceTestSuite) TestRecordGame() {
	s.expectStoredPlayers("Ada")
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) (*gameRepo.SaveGameOutput, error) {
			s.Equal(s.testToday, input.Game.DatePlayed)
			return &gameRepo.SaveGameOutput{Path: "recorded_games/abc.json"}, nil
		})

	output, err := s.trackerService.RecordGame(s.ctx, &RecordGameInput{Draft: GameDraft{
		AdversaryName:  "England",
		AdversaryLevel: 4,
		Seats: []SeatDraft{
			{Player: "Ada", Spirit: "thunderspeaker", Aspect: "warrior"},
			{Player: "Kyle", Spirit: "Volcano Looming High"},
		},
		Outcome: models.OutcomeWon,
		Notes:   "  great game ",
	}})
	s.Require().NoError(err)
	s.Equal("recorded_games/abc.json", output.Path)
	s.Equal("great game", output.Game.Notes)
	s.Equal(models.Spirit{Name: "Thunderspeaker", Complexity: models.ComplexityModerate, Aspect: "Warrior"}, output.Game.PlayersPlayed[0].Spirit)
}

func (s *TrackerServiceTestSuite) TestRecordGame_Rejected() {
	base := GameDraft{
		AdversaryName:  "England",
		AdversaryLevel: 3,
		Seats:          []SeatDraft{{Player: "Kyle", Spirit: "Thunderspeaker"}},
		Outcome:        models.OutcomeLost,
	}

	tests := []struct {
		name     string
		mutate   func(d *GameDraft)
		expected error
		players  bool
	}{
		{"unknown adversary", func(d *GameDraft) { d.AdversaryName = "Scotland" }, ErrUnknownAdversary, false},
		{"level out of range", func(d *GameDraft) { d.AdversaryLevel = 7 }, ErrInvalidLevel, false},
		{"no seats", func(d *GameDraft) { d.Seats = nil }, ErrNoSeats, false},
		{"pending outcome", func(d *GameDraft) { d.Outcome = models.OutcomePending }, ErrOutcomeRequired, false},
		{"unknown player", func(d *GameDraft) { d.Seats[0].Player = "Stranger" }, ErrUnknownPlayer, true},
		{"unknown spirit", func(d *GameDraft) { d.Seats[0].Aspect = "Deeps" }, ErrUnknownSpirit, true},
		{"player seated twice", func(d *GameDraft) {
			d.Seats = append(d.Seats, SeatDraft{Player: "Kyle", Spirit: "Volcano Looming High"})
		}, ErrDuplicatePlayer, true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			draft := base
			draft.Seats = append([]SeatDraft(nil), base.Seats...)
			tt.mutate(&draft)
			if tt.players {
				s.expectStoredPlayers()
			}

			_, err := s.trackerService.RecordGame(s.ctx, &RecordGameInput{Draft: draft})
			s.ErrorIs(err, tt.expected)
		})
	}
}

func (s *TrackerServiceTestSuite) TestRecordGame_DesyncAllowed() {
	s.expectStoredPlayers()
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		Return(&gameRepo.SaveGameOutput{Path: "recorded_games/x.json"}, nil)

	output, err := s.trackerService.RecordGame(s.ctx, &RecordGameInput{Draft: GameDraft{
		DatePlayed:     models.Date{Year: 2024, Month: 12, Day: 31},
		AdversaryName:  "Russia",
		AdversaryLevel: 0,
		Seats:          []SeatDraft{{Player: "Linda", Spirit: "Sun-Bright Whirlwind"}},
		Outcome:        models.OutcomeDesync,
	}})
	s.Require().NoError(err)
	s.Equal(models.Date{Year: 2024, Month: 12, Day: 31}, output.Game.DatePlayed)
}

func (s *TrackerServiceTestSuite) TestGetStats() {
	s.expectHistory()

	output, err := s.trackerService.GetStats(s.ctx, &GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(stats.GroupAdversary, output.Group)
	s.Require().Len(output.Rows, 2)
	s.Equal("Sweden (Lvl 2)", output.Rows[0].Label)
	s.Equal(100.0, output.Rows[0].WinRate)
	s.Equal("England (Lvl 3)", output.Rows[1].Label)
	s.Equal(50.0, output.Rows[1].WinRate)
	s.Equal(3, output.Summary.Games)
	s.Len(output.Trend, 3)
}

func (s *TrackerServiceTestSuite) TestGetStats_FilteredByPlayer() {
	s.expectHistory()

	output, err := s.trackerService.GetStats(s.ctx, &GetStatsInput{
		Query: Query{Criteria: history.Criteria{Player: "Kyle"}},
		Group: stats.GroupSpirit,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Rows, 2)
	s.Equal("River Surges in Sunlight (Travel)", output.Rows[0].Label)
	s.Equal("Thunderspeaker", output.Rows[1].Label)
	s.Equal(2, output.Rows[1].Total)
}

func (s *TrackerServiceTestSuite) TestPickAdversary_Weighted() {
	s.expectHistory()
	// England was played twice at level 3 so it weighs 0.1 against 1 for the
	// other five. 0.01 of 5.1 lands on the first adversary alphabetically.
	s.mockDiceRoller.EXPECT().Float64().Return(0.01)

	output, err := s.trackerService.PickAdversary(s.ctx, &PickAdversaryInput{Level: 3, Weighted: true})
	s.Require().NoError(err)
	s.Equal(models.Adversary{Name: "Brandenburg-Prussia", Level: 3}, output.Adversary)
	s.Equal(models.GroupStats{}, output.Stats)
}

func (s *TrackerServiceTestSuite) TestPickAdversary_UniformWithStats() {
	s.expectHistory()
	s.mockDiceRoller.EXPECT().Roll(6).Return(2)

	output, err := s.trackerService.PickAdversary(s.ctx, &PickAdversaryInput{Level: 3})
	s.Require().NoError(err)
	s.Equal("England", output.Adversary.Name)
	s.Equal(models.GroupStats{Wins: 1, Losses: 1, Total: 2, Played: 2, WinRate: 50}, output.Stats)
}

func (s *TrackerServiceTestSuite) TestPickAdversary_UniformSurvivesStorageFault() {
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{}, errors.New("down"))
	s.mockDiceRoller.EXPECT().Roll(6).Return(1)

	output, err := s.trackerService.PickAdversary(s.ctx, &PickAdversaryInput{Level: 1})
	s.Require().NoError(err)
	s.Equal("Brandenburg-Prussia", output.Adversary.Name)
}

func (s *TrackerServiceTestSuite) TestPickAdversary_WeightedFallsBackToUniform() {
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{}, errors.New("down"))
	s.mockDiceRoller.EXPECT().Roll(6).Return(5)

	output, err := s.trackerService.PickAdversary(s.ctx, &PickAdversaryInput{Level: 2, Weighted: true})
	s.Require().NoError(err)
	s.Equal(models.Adversary{Name: "Russia", Level: 2}, output.Adversary)
	s.Equal(models.GroupStats{}, output.Stats)
	s.Require().Len(output.Warnings, 1)
	s.Contains(output.Warnings[0], "pick is uniform")
}

func (s *TrackerServiceTestSuite) TestPickSpirit_WeightedFallsBackToUniform() {
	s.mockGameRepo.EXPECT().
		ListGames(s.ctx, gomock.Any()).
		Return(&gameRepo.ListGamesOutput{}, errors.New("down"))
	// one base, then one variant of it
	s.mockDiceRoller.EXPECT().Roll(1).Return(1).Times(2)

	output, err := s.trackerService.PickSpirit(s.ctx, &PickSpiritInput{Complexity: models.ComplexityVeryHigh, Weighted: true})
	s.Require().NoError(err)
	s.Equal("Fractured Days Split the Sky", output.Spirit.Name)
	s.Len(output.Warnings, 1)
}

func (s *TrackerServiceTestSuite) TestPickAdversary_InvalidLevel() {
	_, err := s.trackerService.PickAdversary(s.ctx, &PickAdversaryInput{Level: 9})
	s.ErrorIs(err, ErrInvalidLevel)
}

func (s *TrackerServiceTestSuite) TestPickSpirit_Uniform() {
	s.expectHistory()
	s.mockDiceRoller.EXPECT().Roll(1).Return(1)

	output, err := s.trackerService.PickSpirit(s.ctx, &PickSpiritInput{Complexity: models.ComplexityVeryHigh})
	s.Require().NoError(err)
	s.Equal("Fractured Days Split the Sky", output.Spirit.Name)
}

func (s *TrackerServiceTestSuite) TestPickSpirit_InvalidComplexity() {
	_, err := s.trackerService.PickSpirit(s.ctx, &PickSpiritInput{Complexity: "Trivial"})
	s.ErrorIs(err, ErrInvalidComplexity)
}

func (s *TrackerServiceTestSuite) TestExportGames() {
	s.expectHistory()
	s.mockGameRepo.EXPECT().
		ExportGames(s.ctx, &gameRepo.ExportGamesInput{Games: []*models.Game{s.history[2]}}).
		Return(&gameRepo.ExportGamesOutput{Filename: "spirit_island_games_20250419_120000.json", Data: []byte("[]")}, nil)

	output, err := s.trackerService.ExportGames(s.ctx, &ExportGamesInput{
		Query: Query{Criteria: history.Criteria{AdversaryName: "Sweden"}},
	})
	s.Require().NoError(err)
	s.Equal("spirit_island_games_20250419_120000.json", output.Filename)
}

func (s *TrackerServiceTestSuite) TestExportStatsWorkbook() {
	s.expectHistory()

	output, err := s.trackerService.ExportStatsWorkbook(s.ctx, &ExportStatsWorkbookInput{})
	s.Require().NoError(err)
	s.Equal("spirit_island_stats_20250419_120000.xlsx", output.Filename)
	s.NotEmpty(output.Data)
}

func (s *TrackerServiceTestSuite) TestImportGames() {
	s.mockGameRepo.EXPECT().
		ImportGames(s.ctx, &gameRepo.ImportGamesInput{Data: []byte("[...]")}).
		Return(&gameRepo.ImportGamesOutput{
			Imported: 2,
			Failed:   1,
			Failures: []gameRepo.ImportFailure{{Index: 1, Err: models.ErrInvalidGame}},
		}, nil)

	output, err := s.trackerService.ImportGames(s.ctx, &ImportGamesInput{Data: []byte("[...]")})
	s.Require().NoError(err)
	s.Equal(2, output.Imported)
	s.Equal(1, output.Failed)
	s.Equal([]string{"record 2: invalid game"}, output.Failures)
}

func (s *TrackerServiceTestSuite) TestImportGames_Malformed() {
	s.mockGameRepo.EXPECT().
		ImportGames(s.ctx, gomock.Any()).
		Return(nil, gameRepo.ErrMalformedImport)

	_, err := s.trackerService.ImportGames(s.ctx, &ImportGamesInput{Data: []byte("{}")})
	s.Equal(ErrMalformedImport, err)
}

func TestAsTrackerError(t *testing.T) {
	te, ok := AsTrackerError(errors.Join(errors.New("ctx"), ErrUnknownSpirit))
	if !ok || te != ErrUnknownSpirit {
		t.Fatalf("got %v %v", te, ok)
	}

	if _, ok := AsTrackerError(errors.New("plain")); ok {
		t.Fatal("plain error should not match")
	}
}
