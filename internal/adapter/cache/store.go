package cache

import (
	"context"
	"errors"
	"time"
)

// ErrPrefixUnsupported is returned by stores that cannot delete by key prefix.
// ReadCache falls back to Clear.
var ErrPrefixUnsupported = errors.New("cache: prefix deletion unsupported")

// Store is the key/value backend of ReadCache.
type Store interface {
	// Get returns the value and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error

	// Generation returns the current generation of scope, 0 if never bumped.
	Generation(ctx context.Context, scope string) (uint64, error)
	BumpGeneration(ctx context.Context, scope string) error
}
