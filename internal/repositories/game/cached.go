package game

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/f4hy/blightedisland/internal/common/clock"
)

// DefaultCacheTTL is how long a loaded history is reused
const DefaultCacheTTL = 5 * time.Minute

// CachedConfig holds configuration for the caching decorator
type CachedConfig struct {
	// Repository is the wrapped repository
	Repository Repository

	// TTL bounds how long a ListGames result is reused, DefaultCacheTTL when zero
	TTL time.Duration

	Clock clock.Clock
}

// cachedRepository reuses ListGames results until they expire or a write lands
type cachedRepository struct {
	next  Repository
	ttl   time.Duration
	clock clock.Clock

	mu      sync.Mutex
	cached  *ListGamesOutput
	expires time.Time
}

// NewCached wraps a repository with a time-bounded read cache
func NewCached(cfg *CachedConfig) (*cachedRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("repository cannot be nil")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &cachedRepository{
		next:  cfg.Repository,
		ttl:   ttl,
		clock: c,
	}, nil
}

// ListGames returns the cached history while it is fresh
func (r *cachedRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if r.cached != nil && now.Before(r.expires) {
		return copyOutput(r.cached), nil
	}

	output, err := r.next.ListGames(ctx, input)
	if err != nil {
		return output, err
	}

	r.cached = copyOutput(output)
	r.expires = now.Add(r.ttl)
	return output, nil
}

// SaveGame writes through and drops the cached history
func (r *cachedRepository) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	defer r.Invalidate()
	return r.next.SaveGame(ctx, input)
}

// ImportGames writes through and drops the cached history
func (r *cachedRepository) ImportGames(ctx context.Context, input *ImportGamesInput) (*ImportGamesOutput, error) {
	defer r.Invalidate()
	return r.next.ImportGames(ctx, input)
}

func (r *cachedRepository) ExportGames(ctx context.Context, input *ExportGamesInput) (*ExportGamesOutput, error) {
	return r.next.ExportGames(ctx, input)
}

// Invalidate forces the next ListGames to reload
func (r *cachedRepository) Invalidate() {
	r.mu.Lock()
	r.cached = nil
	r.mu.Unlock()
}

// copyOutput clones the slices so callers can reorder them freely.
// Games themselves are treated as immutable.
func copyOutput(o *ListGamesOutput) *ListGamesOutput {
	return &ListGamesOutput{
		Games:   slices.Clone(o.Games),
		Skipped: slices.Clone(o.Skipped),
	}
}
