package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/pkg/ctxutil"
)

// CastMessage is returned with every accepted vote.
const CastMessage = "Vote submitted successfully!"

// CastVote records the caller's vote for a candidate and increments the
// candidate's party tally in the same transaction. After commit it invalidates
// the cached views of the election and schedules a broadcast.
func (s *Service) CastVote(ctx context.Context, input CastVoteInput) (*CastResult, error) {
	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	cand, err := s.candidates.GetByID(ctx, input.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("vote.CastVote: %w", err)
	}

	var (
		ballot   *domain.Ballot
		tally    *domain.PartyTally
		attempts int
		// ids of ballots inserted by this call, committed or not
		written []int64
	)
	err = retry.Do(ctx, s.castBackoff(), func(ctx context.Context) error {
		attempts++
		ballot, tally = nil, nil

		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.tallies.LockElectionShared(ctx, cand.ElectionType); err != nil {
				return err
			}
			b, err := s.ballots.Cast(ctx, voterID, cand.ID)
			if err != nil {
				return err
			}
			written = append(written, b.ID)
			t, err := s.tallies.Increment(ctx, cand.ElectionType, cand.Party, cand.PartyImageRef)
			if err != nil {
				return err
			}
			ballot, tally = b, t
			return nil
		})

		switch {
		case err == nil:
			return nil
		case len(written) > 0 && errors.Is(err, domain.ErrAlreadyVoted):
			// A previous attempt may have committed before its result was lost.
			// Only a ballot this call inserted counts; a concurrent request's
			// ballot for the same candidate is still a double vote.
			existing, lookupErr := s.ballots.GetByVoter(ctx, voterID, cand.ElectionType)
			if lookupErr == nil && slices.Contains(written, existing.ID) {
				ballot = existing
				return nil
			}
			return err
		case errors.Is(err, domain.ErrTransient):
			s.log.WarnContext(ctx, "cast attempt failed, retrying",
				slog.String("voter_id", voterID.String()),
				slog.Int64("candidate_id", cand.ID),
				slog.Int("attempt", attempts),
				slog.String("error", err.Error()),
			)
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err != nil {
		return nil, fmt.Errorf("vote.CastVote: %w", err)
	}

	if tally == nil {
		if tally, err = s.tallies.GetTally(ctx, cand.ElectionType, cand.Party); err != nil {
			return nil, fmt.Errorf("vote.CastVote: read tally: %w", err)
		}
	}

	s.invalidateElection(ctx, cand.ElectionType)
	s.notifier.TallyChanged(cand.ElectionType)

	s.log.InfoContext(ctx, "vote cast",
		slog.String("voter_id", voterID.String()),
		slog.Int64("candidate_id", cand.ID),
		slog.String("election_type", cand.ElectionType.String()),
		slog.String("party", cand.Party),
		slog.Int("attempts", attempts),
	)

	return &CastResult{
		Message:   CastMessage,
		Ballot:    *ballot,
		Candidate: toCandidateView(*cand, tally.VoteCount, true),
	}, nil
}
