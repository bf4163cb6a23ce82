// Command reconcile recounts every election from its ballots and compares the
// result with the stored party tallies. Drift is logged with event=tally_drift.
//
// Usage:
//
//	reconcile [--repair=true] [--election=presidential]
//
// With --repair the drifted tallies are overwritten with the recount, shared
// (redis) caches are invalidated and live subscribers are notified.
//
// Exit codes: 0 = no drift or drift repaired, 1 = error, 2 = drift left unrepaired.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/ballot"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/candidate"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/tally"
	"github.com/heartmarshall/election-backend/internal/adapter/pubsub"
	"github.com/heartmarshall/election-backend/internal/app"
	"github.com/heartmarshall/election-backend/internal/config"
	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/internal/service/vote"
)

func main() {
	repair := flag.Bool("repair", true, "overwrite drifted tallies with the recount")
	election := flag.String("election", "", "reconcile only this election type")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg.Vote.ReconcileRepair = *repair

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	var rdb *redis.Client
	if cfg.NeedsRedis() {
		rdb, err = app.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer rdb.Close() //nolint:errcheck
	}

	// Only shared stores are worth invalidating from outside the server.
	var store cache.Store = cache.NewMemoryStore(1, time.Second)
	if cfg.Cache.Backend == config.CacheBackendRedis {
		store = cache.NewRedisStore(rdb)
	}

	var pub vote.Publisher
	if cfg.Broadcast.Transport == config.BroadcastRedis {
		pub = pubsub.NewRedisRelay(rdb, pubsub.NewHub(1), logger)
	}

	svc := vote.NewService(
		logger,
		candidate.New(pool),
		ballot.New(pool),
		tally.New(pool),
		postgres.NewTxManager(pool),
		cache.New(store, cfg.Cache.TTL, logger),
		pub,
		cfg.Vote,
		len(domain.ElectionTypes),
	)

	var reports []vote.ReconcileReport
	if *election != "" {
		e, perr := domain.ParseElectionType(*election)
		if perr != nil {
			logger.Error("invalid election", slog.String("election", *election))
			os.Exit(1)
		}
		var r *vote.ReconcileReport
		if r, err = svc.Reconcile(ctx, e); err == nil {
			reports = append(reports, *r)
		}
	} else {
		reports, err = svc.ReconcileAll(ctx)
	}

	svc.Notifier().Flush(ctx)

	unrepaired := 0
	for _, r := range reports {
		logger.Info("election reconciled",
			slog.String("election_type", r.ElectionType.String()),
			slog.Int64("ballots", r.Ballots),
			slog.Int("drifted_parties", len(r.Drift)),
			slog.Bool("repaired", r.Repaired),
		)
		if len(r.Drift) > 0 && !r.Repaired {
			unrepaired++
		}
	}

	if err != nil {
		logger.Error("reconciliation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if unrepaired > 0 {
		os.Exit(2)
	}
}
