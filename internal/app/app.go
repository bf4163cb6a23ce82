package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/ballot"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/candidate"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/tally"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/voter"
	"github.com/heartmarshall/election-backend/internal/adapter/pubsub"
	"github.com/heartmarshall/election-backend/internal/auth"
	"github.com/heartmarshall/election-backend/internal/config"
	authsvc "github.com/heartmarshall/election-backend/internal/service/auth"
	"github.com/heartmarshall/election-backend/internal/service/vote"
	"github.com/heartmarshall/election-backend/internal/transport/middleware"
	"github.com/heartmarshall/election-backend/internal/transport/rest"
	"github.com/heartmarshall/election-backend/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.String("broadcast_transport", cfg.Broadcast.Transport),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb, err = NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close() //nolint:errcheck
	}

	store, err := newCacheStore(cfg.Cache, rdb)
	if err != nil {
		return err
	}
	readCache := cache.New(store, cfg.Cache.TTL, logger)

	hub := pubsub.NewHub(cfg.Broadcast.SubscriberBuffer)
	var (
		publisher vote.Publisher = hub
		relay     *pubsub.RedisRelay
	)
	if cfg.Broadcast.Transport == config.BroadcastRedis {
		relay = pubsub.NewRedisRelay(rdb, hub, logger)
		publisher = relay
	}

	txm := postgres.NewTxManager(pool)

	voteService := vote.NewService(
		logger,
		candidate.New(pool),
		ballot.New(pool),
		tally.New(pool),
		txm,
		readCache,
		publisher,
		cfg.Vote,
		cfg.Broadcast.QueueSize,
	)
	reconciler := vote.NewReconciler(voteService, cfg.Vote.ReconcileInterval, logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, voter.New(pool), token.New(pool), txm, jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	var healthExtra []rest.Component
	if rdb != nil {
		healthExtra = append(healthExtra, rest.Component{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}

	wsHandler := ws.NewHandler(hub, cfg.CORS.AllowedOrigins, logger)

	handler := newRouter(routes{
		health:  rest.NewHealthHandler(pool, BuildVersion(), healthExtra...),
		auth:    rest.NewAuthHandler(authService, logger),
		vote:    rest.NewVoteHandler(voteService, logger),
		admin:   rest.NewAdminHandler(voteService, logger),
		ws:      wsHandler,
		limiter: limiter,
		tokens:  authService,
	}, cfg, logger)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return voteService.Notifier().Run(gctx) })
	g.Go(func() error { return reconciler.Run(gctx) })
	if relay != nil {
		g.Go(func() error { return relay.Run(gctx) })
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		wsHandler.Close()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}
