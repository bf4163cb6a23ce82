package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/config"
)

// NewRedisClient parses the Redis URL and pings the server for fail-fast
// validation.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// newCacheStore selects the read cache backend. rdb may be nil unless the
// redis backend is configured.
func newCacheStore(cfg config.CacheConfig, rdb *redis.Client) (cache.Store, error) {
	switch cfg.Backend {
	case config.CacheBackendMemory:
		return cache.NewMemoryStore(cfg.MaxEntries, cfg.TTL), nil
	case config.CacheBackendRedis:
		if rdb == nil {
			return nil, fmt.Errorf("cache backend %q requires a redis client", cfg.Backend)
		}
		return cache.NewRedisStore(rdb), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
