package blobstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"
)

const (
	scanCount = 500
	mgetBatch = 200
)

// RedisConfig holds configuration for the Redis blob store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// KeyPrefix namespaces every blob key, e.g. "blightedisland:"
	KeyPrefix string
}

// RedisStore keeps each blob as a plain string key
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedis creates a new Redis-backed blob store
func NewRedis(cfg *RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:    cfg.RedisClient,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

// List scans for keys under prefix
func (s *RedisStore) List(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(s.keyPrefix+prefix) + "*"

	var names []string
	iter := s.client.Scan(ctx, 0, match, scanCount).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan blobs: %w", err)
	}

	// SCAN may return a key more than once
	slices.Sort(names)
	return slices.Compact(names), nil
}

// ReadAll fetches blobs with batched MGET calls
func (s *RedisStore) ReadAll(ctx context.Context, paths []string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(paths))
	for start := 0; start < len(paths); start += mgetBatch {
		batch := paths[start:min(start+mgetBatch, len(paths))]

		keys := make([]string, len(batch))
		for i, p := range batch {
			keys[i] = s.keyPrefix + p
		}

		vals, err := s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read blobs: %w", err)
		}

		for i, v := range vals {
			str, ok := v.(string)
			if !ok {
				continue
			}
			out[batch[i]] = []byte(str)
		}
	}
	return out, nil
}

// Write stores a blob with no expiration
func (s *RedisStore) Write(ctx context.Context, path string, data []byte) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.keyPrefix+path, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", path, err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
