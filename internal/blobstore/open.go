package blobstore

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Open picks a backend from a storage URI:
//
//	redis://[:password@]host:port/db[?prefix=ns:]   (also rediss://)
//	sqlite:///abs/path/games.db or sqlite://rel/path/games.db
//	file://./data, or a bare directory path
func Open(uri string) (Store, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, fmt.Errorf("storage uri cannot be empty")
	}

	scheme, rest, found := strings.Cut(uri, "://")
	if !found {
		return NewFile(uri)
	}

	switch strings.ToLower(scheme) {
	case "redis", "rediss":
		u, err := url.Parse(uri)
		if err != nil {
			return nil, fmt.Errorf("invalid redis uri: %w", err)
		}
		// prefix is ours; go-redis rejects options it does not know
		q := u.Query()
		keyPrefix := q.Get("prefix")
		q.Del("prefix")
		u.RawQuery = q.Encode()

		opts, err := redis.ParseURL(u.String())
		if err != nil {
			return nil, fmt.Errorf("invalid redis uri: %w", err)
		}
		client := redis.NewClient(opts)
		store, err := NewRedis(&RedisConfig{
			RedisClient: client,
			KeyPrefix:   keyPrefix,
		})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	case "sqlite":
		return OpenSQLite(rest)
	case "file":
		return NewFile(rest)
	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", scheme)
	}
}
