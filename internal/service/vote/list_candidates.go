package vote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/pkg/ctxutil"
)

// ListCandidates returns one rendered CandidatePage as JSON. The page is cached
// per filter, and per voter when the caller is authenticated.
func (s *Service) ListCandidates(ctx context.Context, input ListCandidatesInput) ([]byte, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	f, page := input.filter()

	voterID, authed := ctxutil.VoterIDFromCtx(ctx)
	voterKey := ""
	if authed {
		voterKey = voterID.String()
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	key := cache.CandidatesKey(f.ElectionType, cacheParams(f, page), voterKey)
	body, err := s.cache.GetOrCompute(ctx, key, func(ctx context.Context) ([]byte, error) {
		p, err := s.buildCandidatePage(ctx, f, page, voterID, authed)
		if err != nil {
			return nil, err
		}
		return json.Marshal(p)
	})
	if err != nil {
		return nil, fmt.Errorf("vote.ListCandidates: %w", err)
	}
	return body, nil
}

func (s *Service) buildCandidatePage(ctx context.Context, f domain.CandidateFilter, page int, voterID uuid.UUID, authed bool) (*CandidatePage, error) {
	var (
		candidates []domain.Candidate
		total      int
		tallies    []domain.PartyTally
		voted      bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.candidates.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.candidates.Count(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		tallies, err = s.tallies.GetTallies(gctx, f.ElectionType)
		return err
	})
	if authed {
		g.Go(func() error {
			_, err := s.ballots.GetByVoter(gctx, voterID, f.ElectionType)
			switch {
			case err == nil:
				voted = true
			case errors.Is(err, domain.ErrNotFound):
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	votes := make(map[string]int64, len(tallies))
	for _, t := range tallies {
		votes[t.Party] = t.VoteCount
	}

	results := make([]CandidateView, len(candidates))
	for i, c := range candidates {
		results[i] = toCandidateView(c, votes[c.Party], voted)
	}

	return &CandidatePage{
		Count:    total,
		Page:     page,
		PageSize: f.Limit,
		Results:  results,
	}, nil
}
