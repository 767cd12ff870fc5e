package game

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/f4hy/blightedisland/internal/blobstore"
	storemocks "github.com/f4hy/blightedisland/internal/blobstore/mocks"
	clockmocks "github.com/f4hy/blightedisland/internal/common/clock/mocks"
	uuidmocks "github.com/f4hy/blightedisland/internal/common/uuid/mocks"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlobRepositoryTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockClock *clockmocks.MockClock
	mockUUID  *uuidmocks.MockUUID
	repo      Repository
	ctx       context.Context
	testNow   time.Time
}

func (s *BlobRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := blobstore.NewRedis(&blobstore.RedisConfig{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	s.testNow = time.Date(2025, 4, 19, 21, 30, 5, 0, time.UTC)
	s.mockClock = clockmocks.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()
	s.mockUUID = uuidmocks.NewMockUUID(s.ctrl)
	s.mockUUID.EXPECT().NewUUID().Return("0a1b2c3d-0000-4000-8000-000000000000").AnyTimes()

	repo, err := NewBlob(&Config{
		Store: store,
		Clock: s.mockClock,
		UUID:  s.mockUUID,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *BlobRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestBlobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BlobRepositoryTestSuite))
}

func testGame(date models.Date, adversary string, outcome models.Outcome) *models.Game {
	return &models.Game{
		DatePlayed: date,
		Adversary:  models.Adversary{Name: adversary, Level: 3},
		PlayersPlayed: []models.PlayerSpirit{
			{Player: models.Player{Name: "Kyle"}, Spirit: models.Spirit{Name: "Thunderspeaker", Complexity: models.ComplexityModerate}},
			{Player: models.Player{Name: "Bill"}, Spirit: models.Spirit{Name: "River Surges in Sunlight", Complexity: models.ComplexityLow, Aspect: "Travel"}},
		},
		Outcome: outcome,
	}
}

func (s *BlobRepositoryTestSuite) TestListGames_EmptyRoot() {
	output, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Empty(output.Games)
	s.Empty(output.Skipped)
}

func (s *BlobRepositoryTestSuite) TestSaveAndListRoundTrip() {
	game := testGame(models.Date{Year: 2025, Month: 3, Day: 1}, "England", models.OutcomeWon)
	game.Notes = "fear deck ran out"

	saved, err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(saved.Path, DefaultRoot))
	s.True(strings.HasSuffix(saved.Path, ".json"))
	// sha256 hex digest
	s.Len(strings.TrimSuffix(strings.TrimPrefix(saved.Path, DefaultRoot), ".json"), 64)

	output, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal(*game, *output.Games[0])
}

func (s *BlobRepositoryTestSuite) TestSaveGame_Idempotent() {
	game := testGame(models.Date{Year: 2025, Month: 3, Day: 1}, "Sweden", models.OutcomeLost)

	first, err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)
	second, err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	s.Equal(first.Path, second.Path)
	s.Len(s.mr.Keys(), 1)
}

func (s *BlobRepositoryTestSuite) TestSaveGame_NilInput() {
	_, err := s.repo.SaveGame(s.ctx, nil)
	s.ErrorIs(err, ErrNilGame)

	_, err = s.repo.SaveGame(s.ctx, &SaveGameInput{})
	s.ErrorIs(err, ErrNilGame)
}

func (s *BlobRepositoryTestSuite) TestListGames_SkipsInvalidBlobs() {
	game := testGame(models.Date{Year: 2025, Month: 3, Day: 1}, "England", models.OutcomeWon)
	_, err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game})
	s.Require().NoError(err)

	s.Require().NoError(s.mr.Set(DefaultRoot+"broken.json", "{not json"))
	s.Require().NoError(s.mr.Set(DefaultRoot+"conflict.json",
		`{"adversary":{"name":"England","level":1},"players_played":[{"player":{"name":"Kyle"},"spirit":{"name":"Thunderspeaker","complexity":"Moderate"}}],"won":true,"desync":true}`))

	output, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Len(output.Games, 1)
	s.Require().Len(output.Skipped, 2)
	s.Equal(DefaultRoot+"broken.json", output.Skipped[0].Path)
	s.ErrorIs(output.Skipped[1].Err, models.ErrInvalidGame)
}

func (s *BlobRepositoryTestSuite) TestListGames_NewestFirst() {
	dates := []models.Date{
		{Year: 2025, Month: 1, Day: 10},
		{Year: 2025, Month: 3, Day: 2},
		{Year: 2024, Month: 12, Day: 24},
	}
	for _, d := range dates {
		_, err := s.repo.SaveGame(s.ctx, &SaveGameInput{Game: testGame(d, "England", models.OutcomeWon)})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 3)
	s.Equal(models.Date{Year: 2025, Month: 3, Day: 2}, output.Games[0].DatePlayed)
	s.Equal(models.Date{Year: 2025, Month: 1, Day: 10}, output.Games[1].DatePlayed)
	s.Equal(models.Date{Year: 2024, Month: 12, Day: 24}, output.Games[2].DatePlayed)
}

func (s *BlobRepositoryTestSuite) TestListGames_DefaultsMissingDate() {
	s.Require().NoError(s.mr.Set(DefaultRoot+"undated.json",
		`{"adversary":{"name":"Russia","level":2},"players_played":[{"player":{"name":"Linda"},"spirit":{"name":"Volcano Looming High","complexity":"Moderate"}}],"won":false,"desync":false}`))

	output, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Games, 1)
	s.Equal(models.Date{Year: 2025, Month: 4, Day: 19}, output.Games[0].DatePlayed)
	s.Equal(models.OutcomeLost, output.Games[0].Outcome)
}

func (s *BlobRepositoryTestSuite) TestImportGames_PartialFailure() {
	payload := `[
		{"date_played":"2025-02-01","adversary":{"name":"England","level":3},"players_played":[{"player":{"name":"Kyle"},"spirit":{"name":"Thunderspeaker","complexity":"Moderate","aspect":null}}],"won":true,"desync":false,"notes":null},
		{"date_played":"2025-02-02","adversary":{"name":"England"}},
		{"date_played":"2025-02-03","adversary":{"name":"Sweden","level":1},"players_played":[{"player":{"name":"Bill"},"spirit":{"name":"Sun-Bright Whirlwind","complexity":"Low","aspect":null}}],"won":false,"desync":false,"notes":null}
	]`

	output, err := s.repo.ImportGames(s.ctx, &ImportGamesInput{Data: []byte(payload)})
	s.Require().NoError(err)
	s.Equal(2, output.Imported)
	s.Equal(1, output.Failed)
	s.Require().Len(output.Failures, 1)
	s.Equal(1, output.Failures[0].Index)

	listed, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Len(listed.Games, 2)
}

func (s *BlobRepositoryTestSuite) TestImportGames_MalformedTopLevel() {
	for _, payload := range []string{`{"adversary":{}}`, `not json`, `null`, `[{"a":1}`} {
		output, err := s.repo.ImportGames(s.ctx, &ImportGamesInput{Data: []byte(payload)})
		s.ErrorIs(err, ErrMalformedImport, payload)
		s.Nil(output)
	}
	s.Empty(s.mr.Keys())
}

func (s *BlobRepositoryTestSuite) TestExportImportRoundTrip() {
	games := []*models.Game{
		testGame(models.Date{Year: 2025, Month: 3, Day: 2}, "England", models.OutcomeWon),
		testGame(models.Date{Year: 2025, Month: 3, Day: 1}, "Sweden", models.OutcomeDesync),
	}

	exported, err := s.repo.ExportGames(s.ctx, &ExportGamesInput{Games: games})
	s.Require().NoError(err)
	s.Equal("spirit_island_games_20250419_213005.json", exported.Filename)

	var raw []map[string]any
	s.Require().NoError(json.Unmarshal(exported.Data, &raw))
	s.Require().Len(raw, 2)
	s.Nil(raw[1]["won"])
	s.Equal(true, raw[1]["desync"])

	imported, err := s.repo.ImportGames(s.ctx, &ImportGamesInput{Data: exported.Data})
	s.Require().NoError(err)
	s.Equal(2, imported.Imported)

	listed, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(listed.Games, 2)
	s.Equal(*games[0], *listed.Games[0])
	s.Equal(*games[1], *listed.Games[1])
}

func (s *BlobRepositoryTestSuite) TestExportGames_Empty() {
	exported, err := s.repo.ExportGames(s.ctx, &ExportGamesInput{})
	s.Require().NoError(err)
	s.Equal("[]", string(exported.Data))
}

func TestBlobRepository_StorageFaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := storemocks.NewMockStore(ctrl)
	repo, err := NewBlob(&Config{Store: mockStore, Root: "games"})
	require.NoError(t, err)
	ctx := context.Background()
	fault := errors.New("connection refused")

	mockStore.EXPECT().List(ctx, "games/").Return(nil, fault)
	output, err := repo.ListGames(ctx, &ListGamesInput{})
	assert.ErrorIs(t, err, fault)
	require.NotNil(t, output)
	assert.Empty(t, output.Games)

	mockStore.EXPECT().List(ctx, "games/").Return([]string{"games/a.json"}, nil)
	mockStore.EXPECT().ReadAll(ctx, []string{"games/a.json"}).Return(nil, fault)
	output, err = repo.ListGames(ctx, &ListGamesInput{})
	assert.ErrorIs(t, err, fault)
	assert.Empty(t, output.Games)

	mockStore.EXPECT().List(ctx, "games/").Return(nil, blobstore.ErrNotFound)
	output, err = repo.ListGames(ctx, &ListGamesInput{})
	assert.NoError(t, err)
	assert.Empty(t, output.Games)

	mockStore.EXPECT().Write(ctx, gomock.Any(), gomock.Any()).Return(fault)
	game := testGame(models.Date{Year: 2025, Month: 3, Day: 1}, "England", models.OutcomeWon)
	_, err = repo.SaveGame(ctx, &SaveGameInput{Game: game})
	assert.ErrorIs(t, err, fault)
}

func TestNewBlob_Validation(t *testing.T) {
	_, err := NewBlob(nil)
	assert.Error(t, err)

	_, err = NewBlob(&Config{})
	assert.Error(t, err)
}
