package vote

import (
	"context"
	"log/slog"
	"time"
)

// Reconciler periodically reconciles every election.
type Reconciler struct {
	svc      *Service
	interval time.Duration
	log      *slog.Logger
}

// NewReconciler creates a reconciler. A non-positive interval disables it.
func NewReconciler(svc *Service, interval time.Duration, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		svc:      svc,
		interval: interval,
		log:      logger.With("module", "vote.reconciler"),
	}
}

// Run reconciles on every tick until ctx is done.
func (r *Reconciler) Run(ctx context.Context) error {
	if r.interval <= 0 {
		r.log.InfoContext(ctx, "reconciler disabled")
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce reconciles every election once and logs a summary.
func (r *Reconciler) RunOnce(ctx context.Context) {
	start := time.Now()
	reports, err := r.svc.ReconcileAll(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "reconciliation failed",
			slog.String("event", "reconcile_failed"),
			slog.String("error", err.Error()),
		)
	}

	drifted := 0
	for _, rep := range reports {
		drifted += len(rep.Drift)
	}
	r.log.InfoContext(ctx, "reconciliation finished",
		slog.String("event", "reconcile_done"),
		slog.Int("elections", len(reports)),
		slog.Int("drifted_parties", drifted),
		slog.Duration("took", time.Since(start)),
	)
}
