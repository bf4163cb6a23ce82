package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Vote      VoteConfig      `yaml:"vote"`
	Broadcast BroadcastConfig `yaml:"broadcast"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout bounds every statement and lock wait on the server side. Zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"5s"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"election-backend"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"168h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig holds read cache settings.
type CacheConfig struct {
	Backend    string        `yaml:"backend"     env:"CACHE_BACKEND"     env-default:"memory"`
	TTL        time.Duration `yaml:"ttl"         env:"CACHE_TTL"         env-default:"6m"`
	MaxEntries int           `yaml:"max_entries" env:"CACHE_MAX_ENTRIES" env-default:"10000"`
}

// RedisConfig holds the Redis connection shared by the cache and the broadcast relay.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// VoteConfig holds vote casting and reconciliation settings.
type VoteConfig struct {
	MaxCastAttempts   uint64        `yaml:"max_cast_attempts"   env:"VOTE_MAX_CAST_ATTEMPTS"   env-default:"3"`
	RetryBaseDelay    time.Duration `yaml:"retry_base_delay"    env:"VOTE_RETRY_BASE_DELAY"    env-default:"20ms"`
	StoreTimeout      time.Duration `yaml:"store_timeout"       env:"VOTE_STORE_TIMEOUT"       env-default:"5s"`
	ReconcileInterval time.Duration `yaml:"reconcile_interval"  env:"VOTE_RECONCILE_INTERVAL"  env-default:"10m"`
	ReconcileRepair   bool          `yaml:"reconcile_repair"    env:"VOTE_RECONCILE_REPAIR"    env-default:"true"`
}

// Broadcast transports.
const (
	BroadcastLocal = "local"
	BroadcastRedis = "redis"
)

// BroadcastConfig holds live tally broadcast settings.
type BroadcastConfig struct {
	Transport        string `yaml:"transport"         env:"BROADCAST_TRANSPORT"         env-default:"local"`
	SubscriberBuffer int    `yaml:"subscriber_buffer" env:"BROADCAST_SUBSCRIBER_BUFFER" env-default:"16"`
	QueueSize        int    `yaml:"queue_size"        env:"BROADCAST_QUEUE_SIZE"        env-default:"64"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables a limit.
type RateLimitConfig struct {
	CastPerMinute int `yaml:"cast_per_minute" env:"RATE_LIMIT_CAST_PER_MINUTE" env-default:"30"`
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
}

// NeedsRedis reports whether any component is configured to use Redis.
func (c *Config) NeedsRedis() bool {
	return c.Cache.Backend == CacheBackendRedis || c.Broadcast.Transport == BroadcastRedis
}
