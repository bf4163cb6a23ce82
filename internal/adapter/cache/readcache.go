// Package cache implements the read-through cache of rendered election views.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// ReadCache serves rendered views from a Store and recomputes them on a miss.
//
// Every scope carries a generation that is part of the stored key. Invalidate
// bumps the generation before deleting, so a compute that started before the
// invalidation writes under a key no reader will ask for again.
type ReadCache struct {
	store Store
	ttl   time.Duration
	group singleflight.Group
	log   *slog.Logger
}

// New creates a ReadCache over store. Entries expire after ttl.
func New(store Store, ttl time.Duration, logger *slog.Logger) *ReadCache {
	return &ReadCache{
		store: store,
		ttl:   ttl,
		log:   logger.With("module", "cache"),
	}
}

// GetOrCompute returns the cached bytes for key, or runs compute, stores its
// result and returns it. Concurrent misses for the same key share one compute.
// Store failures never fail the call: the value is computed and not cached.
func (c *ReadCache) GetOrCompute(ctx context.Context, key Key, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	gen, err := c.store.Generation(ctx, key.Scope)
	if err != nil {
		c.log.WarnContext(ctx, "cache generation read failed", slog.String("scope", key.Scope), slog.String("error", err.Error()))
		return compute(ctx)
	}
	full := key.format(gen)

	val, ok, err := c.store.Get(ctx, full)
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed", slog.String("key", full), slog.String("error", err.Error()))
		return compute(ctx)
	}
	if ok {
		return val, nil
	}

	// The shared compute must not die with whichever caller started it.
	flightCtx := context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(full, func() (any, error) {
		val, err := compute(flightCtx)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(flightCtx, full, val, c.ttl); err != nil {
			c.log.WarnContext(ctx, "cache write failed", slog.String("key", full), slog.String("error", err.Error()))
		}
		return val, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate drops every entry under scopePrefix. When the store cannot delete
// by prefix the whole store is cleared.
//
// A failed generation bump fails the call even if the delete succeeded: without
// it a compute started before the delete can store its stale result under the
// key readers still use. A failed delete after a successful bump is only logged.
func (c *ReadCache) Invalidate(ctx context.Context, scopePrefix string) error {
	bumpErr := c.store.BumpGeneration(ctx, scopePrefix)

	err := c.store.DeletePrefix(ctx, scopePrefix)
	if errors.Is(err, ErrPrefixUnsupported) {
		err = c.store.Clear(ctx)
	}

	switch {
	case bumpErr != nil && err != nil:
		return fmt.Errorf("cache.Invalidate %s: %w", scopePrefix, errors.Join(bumpErr, err))
	case bumpErr != nil:
		return fmt.Errorf("cache.Invalidate %s: bump generation: %w", scopePrefix, bumpErr)
	case err != nil:
		c.log.WarnContext(ctx, "cache delete failed after generation bump",
			slog.String("scope", scopePrefix), slog.String("error", err.Error()))
	}
	return nil
}

// Clear drops every cached entry.
func (c *ReadCache) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("cache.Clear: %w", err)
	}
	return nil
}
