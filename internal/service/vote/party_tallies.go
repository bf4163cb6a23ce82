package vote

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/election-backend/internal/adapter/cache"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// PartyTallies returns the rendered PartyTallyList of one election as JSON.
func (s *Service) PartyTallies(ctx context.Context, electionType string) ([]byte, error) {
	election, err := domain.ParseElectionType(electionType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	body, err := s.renderPartyTallies(ctx, election)
	if err != nil {
		return nil, fmt.Errorf("vote.PartyTallies: %w", err)
	}
	return body, nil
}

// renderPartyTallies serves the tallies view through the read cache.
func (s *Service) renderPartyTallies(ctx context.Context, election domain.ElectionType) ([]byte, error) {
	return s.cache.GetOrCompute(ctx, cache.TalliesKey(election), func(ctx context.Context) ([]byte, error) {
		tallies, err := s.tallies.GetTallies(ctx, election)
		if err != nil {
			return nil, err
		}

		views := make([]PartyTallyView, len(tallies))
		for i, t := range tallies {
			views[i] = toPartyTallyView(t)
		}
		return json.Marshal(PartyTallyList{ElectionType: election, Tallies: views})
	})
}
