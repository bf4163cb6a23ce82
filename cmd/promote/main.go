// Command promote sets a voter's role by national ID. It is used to
// bootstrap the first admin, who can then call operator endpoints.
//
// Usage:
//
//	promote --national-id=12345678901 [--role=admin]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/election-backend/internal/adapter/postgres/voter"
	"github.com/heartmarshall/election-backend/internal/app"
	"github.com/heartmarshall/election-backend/internal/config"
	"github.com/heartmarshall/election-backend/internal/domain"
	authsvc "github.com/heartmarshall/election-backend/internal/service/auth"
)

func main() {
	nationalID := flag.String("national-id", "", "national ID of the voter to promote")
	role := flag.String("role", string(domain.VoterRoleAdmin), "role to grant (voter or admin)")
	flag.Parse()

	if *nationalID == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --national-id=12345678901 [--role=admin]")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	logger := app.NewLogger(config.LogConfig{Level: "warn", Format: "text"})
	svc := authsvc.NewService(logger, voter.New(pool), nil, nil, nil, config.AuthConfig{})

	v, err := svc.GrantRole(ctx, *nationalID, domain.VoterRole(*role))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No voter found with national ID %q.\n", *nationalID)
		os.Exit(1)
	case err != nil:
		log.Fatalf("grant role: %v", err)
	}

	fmt.Printf("Voter %s (%s) now has role %q.\n", v.FullName(), v.NationalID, v.Role)
}
