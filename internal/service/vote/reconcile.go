package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// Reconcile recounts the ballots of one election and compares the result with
// the stored tallies. Drift is logged as an inconsistency and, when repair is
// enabled, the tallies are overwritten with the recount.
//
// The exclusive election lock waits for in-flight casts and holds new ones off
// until the comparison (and repair) commits.
func (s *Service) Reconcile(ctx context.Context, election domain.ElectionType) (*ReconcileReport, error) {
	if !election.IsValid() {
		return nil, domain.NewValidationError("election_type", "must be one of presidential, governorship, senatorial")
	}

	report := &ReconcileReport{ElectionType: election}
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		*report = ReconcileReport{ElectionType: election}

		if err := s.tallies.LockElectionExclusive(ctx, election); err != nil {
			return err
		}
		counts, err := s.tallies.Recount(ctx, election)
		if err != nil {
			return err
		}
		stored, err := s.tallies.GetTallies(ctx, election)
		if err != nil {
			return err
		}

		for _, pc := range counts {
			report.Ballots += pc.Ballots
		}
		report.Drift = computeDrift(election, counts, stored)
		if len(report.Drift) == 0 || !s.cfg.ReconcileRepair {
			return nil
		}

		images := make(map[string]string, len(counts))
		for _, pc := range counts {
			images[pc.Party] = pc.PartyImageRef
		}
		for _, d := range report.Drift {
			if err := s.tallies.SetCount(ctx, election, d.Party, d.Recounted, images[d.Party]); err != nil {
				return err
			}
		}
		report.Repaired = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vote.Reconcile %s: %w", election, err)
	}

	for _, d := range report.Drift {
		s.log.ErrorContext(ctx, "tally drift detected",
			slog.String("event", "tally_drift"),
			slog.String("election_type", election.String()),
			slog.String("party", d.Party),
			slog.Int64("stored", d.Stored),
			slog.Int64("recounted", d.Recounted),
			slog.Bool("repaired", report.Repaired),
			slog.String("error", domain.ErrInconsistency.Error()),
		)
	}

	if report.Repaired {
		s.invalidateElection(ctx, election)
		s.notifier.TallyChanged(election)
	}

	return report, nil
}

// ReconcileAll reconciles every election type. Failures of one election do not
// stop the others.
func (s *Service) ReconcileAll(ctx context.Context) ([]ReconcileReport, error) {
	var (
		reports []ReconcileReport
		errs    []error
	)
	for _, e := range domain.ElectionTypes {
		r, err := s.Reconcile(ctx, e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reports = append(reports, *r)
	}
	return reports, errors.Join(errs...)
}

// computeDrift returns every party whose stored tally differs from its recount,
// ordered by party name. Parties with a tally but no ballots recount to zero.
func computeDrift(election domain.ElectionType, counts []domain.PartyCount, stored []domain.PartyTally) []domain.TallyDrift {
	recounted := make(map[string]int64, len(counts))
	for _, pc := range counts {
		recounted[pc.Party] = pc.Ballots
	}
	storedBy := make(map[string]int64, len(stored))
	for _, t := range stored {
		storedBy[t.Party] = t.VoteCount
	}

	var drift []domain.TallyDrift
	for party, n := range recounted {
		if storedBy[party] != n {
			drift = append(drift, domain.TallyDrift{ElectionType: election, Party: party, Stored: storedBy[party], Recounted: n})
		}
	}
	for party, n := range storedBy {
		if _, ok := recounted[party]; !ok && n != 0 {
			drift = append(drift, domain.TallyDrift{ElectionType: election, Party: party, Stored: n, Recounted: 0})
		}
	}

	sort.Slice(drift, func(i, j int) bool { return drift[i].Party < drift[j].Party })
	return drift
}
