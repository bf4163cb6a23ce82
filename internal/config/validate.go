package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendRedis:
	default:
		return fmt.Errorf("cache.backend must be %q or %q (got %q)", CacheBackendMemory, CacheBackendRedis, c.Cache.Backend)
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 (got %s)", c.Cache.TTL)
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be > 0 (got %d)", c.Cache.MaxEntries)
	}

	switch c.Broadcast.Transport {
	case BroadcastLocal, BroadcastRedis:
	default:
		return fmt.Errorf("broadcast.transport must be %q or %q (got %q)", BroadcastLocal, BroadcastRedis, c.Broadcast.Transport)
	}
	if c.Broadcast.SubscriberBuffer <= 0 || c.Broadcast.QueueSize <= 0 {
		return fmt.Errorf("broadcast.subscriber_buffer and broadcast.queue_size must be > 0")
	}

	if c.NeedsRedis() && c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required when cache.backend or broadcast.transport is %q", CacheBackendRedis)
	}

	if err := c.Vote.validate(); err != nil {
		return fmt.Errorf("vote: %w", err)
	}

	return nil
}

func (v *VoteConfig) validate() error {
	if v.MaxCastAttempts < 1 {
		return fmt.Errorf("max_cast_attempts must be >= 1 (got %d)", v.MaxCastAttempts)
	}
	if v.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %s)", v.RetryBaseDelay)
	}
	if v.StoreTimeout <= 0 {
		return fmt.Errorf("store_timeout must be > 0 (got %s)", v.StoreTimeout)
	}
	if v.ReconcileInterval < 0 {
		return fmt.Errorf("reconcile_interval must be >= 0 (got %s)", v.ReconcileInterval)
	}
	return nil
}
