package player

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/f4hy/blightedisland/internal/blobstore"
	"github.com/f4hy/blightedisland/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BlobRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *BlobRepositoryTestSuite) SetupTest() {
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

	repo, err := NewBlob(&Config{
		Store: store,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *BlobRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestBlobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BlobRepositoryTestSuite))
}

func (s *BlobRepositoryTestSuite) TestAddAndGetPlayer() {
	output, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: "  Ada  "})
	s.Require().NoError(err)
	s.Equal("Ada", output.Player.Name)
	s.True(s.mr.Exists("players/Ada.json"))

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{Name: "Ada"})
	s.Require().NoError(err)
	s.Equal(models.Player{Name: "Ada"}, *player)
}

func (s *BlobRepositoryTestSuite) TestAddPlayer_Duplicate() {
	_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: "Ada"})
	s.Require().NoError(err)

	_, err = s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: "Ada"})
	s.ErrorIs(err, ErrPlayerExists)

	// identity is case-sensitive
	_, err = s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: "ada"})
	s.NoError(err)
}

func (s *BlobRepositoryTestSuite) TestAddPlayer_Blank() {
	_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: "   "})
	s.ErrorIs(err, ErrInvalidName)

	_, err = s.repo.AddPlayer(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidName)
}

func (s *BlobRepositoryTestSuite) TestGetPlayer_NotFound() {
	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{Name: "Nobody"})
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *BlobRepositoryTestSuite) TestListPlayers_Sorted() {
	for _, name := range []string{"Zed", "Ada", "Mo/Jo"} {
		_, err := s.repo.AddPlayer(s.ctx, &AddPlayerInput{Name: name})
		s.Require().NoError(err)
	}
	s.Require().NoError(s.mr.Set("players/garbage.json", "{"))

	output, err := s.repo.ListPlayers(s.ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Players, 3)
	s.Equal("Ada", output.Players[0].Name)
	s.Equal("Mo/Jo", output.Players[1].Name)
	s.Equal("Zed", output.Players[2].Name)
}

func (s *BlobRepositoryTestSuite) TestListPlayers_Empty() {
	output, err := s.repo.ListPlayers(s.ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Empty(output.Players)
}

func TestBlobRepository_FileStore(t *testing.T) {
	store, err := blobstore.NewFile(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	repo, err := NewBlob(&Config{Store: store, Root: "people"})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = repo.AddPlayer(ctx, &AddPlayerInput{Name: "Mo/Jo"})
	require.NoError(t, err)

	output, err := repo.ListPlayers(ctx, &ListPlayersInput{})
	require.NoError(t, err)
	require.Len(t, output.Players, 1)
	assert.Equal(t, "Mo/Jo", output.Players[0].Name)

	_, err = repo.AddPlayer(ctx, &AddPlayerInput{Name: ".Kai"})
	require.NoError(t, err)

	output, err = repo.ListPlayers(ctx, &ListPlayersInput{})
	require.NoError(t, err)
	require.Len(t, output.Players, 2)
	assert.Equal(t, ".Kai", output.Players[0].Name)

	_, err = repo.AddPlayer(ctx, &AddPlayerInput{Name: ".Kai"})
	assert.ErrorIs(t, err, ErrPlayerExists)
}
