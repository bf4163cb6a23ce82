package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisValuePrefix = "cache:"
	redisGenPrefix   = "cachegen:"
	redisScanCount   = 200
)

// RedisStore is a Store shared by every server instance.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store on an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, redisValuePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, redisValuePrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	return r.deleteMatching(ctx, redisValuePrefix+escapeGlob(prefix)+"*")
}

// Clear removes every cached value. Generation counters are kept.
func (r *RedisStore) Clear(ctx context.Context) error {
	return r.deleteMatching(ctx, redisValuePrefix+"*")
}

func (r *RedisStore) Generation(ctx context.Context, scope string) (uint64, error) {
	n, err := r.client.Get(ctx, redisGenPrefix+scope).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis generation: %w", err)
	}
	return n, nil
}

func (r *RedisStore) BumpGeneration(ctx context.Context, scope string) error {
	if err := r.client.Incr(ctx, redisGenPrefix+scope).Err(); err != nil {
		return fmt.Errorf("redis incr generation: %w", err)
	}
	return nil
}

func (r *RedisStore) deleteMatching(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, redisScanCount).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
