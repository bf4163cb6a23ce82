package vote

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/pkg/ctxutil"
)

// VoterStatus reports the elections the caller has already voted in. It is never cached.
func (s *Service) VoterStatus(ctx context.Context) (*VoterStatus, error) {
	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.StoreTimeout)
	defer cancel()

	voted, err := s.ballots.VotedElections(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("vote.VoterStatus: %w", err)
	}

	pending := make([]domain.ElectionType, 0, len(domain.ElectionTypes))
	for _, e := range domain.ElectionTypes {
		if !slices.Contains(voted, e) {
			pending = append(pending, e)
		}
	}

	return &VoterStatus{VoterID: voterID, Voted: voted, Pending: pending}, nil
}
