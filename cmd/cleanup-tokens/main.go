// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is intended to be invoked by an external cron job.
//
// Usage:
//
//	cleanup-tokens
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/election-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/election-backend/internal/app"
	"github.com/heartmarshall/election-backend/internal/config"
	authsvc "github.com/heartmarshall/election-backend/internal/service/auth"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	logger := app.NewLogger(config.LogConfig{Level: os.Getenv("LOG_LEVEL"), Format: "json"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger, nil, token.New(pool), nil, nil, config.AuthConfig{})

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("refresh token cleanup completed", slog.Int("deleted", deleted))
}
