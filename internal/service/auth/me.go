package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/pkg/ctxutil"
)

// Me returns the profile of the authenticated voter.
func (s *Service) Me(ctx context.Context) (*domain.Voter, error) {
	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	voter, err := s.voters.GetByID(ctx, voterID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return voter, nil
}

// GrantRole sets the role of the voter with the given national ID.
// Existing access tokens keep their old role until they expire.
func (s *Service) GrantRole(ctx context.Context, nationalID string, role domain.VoterRole) (*domain.Voter, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be voter or admin")
	}

	voter, err := s.voters.SetRole(ctx, strings.TrimSpace(nationalID), role)
	if err != nil {
		return nil, fmt.Errorf("auth.GrantRole: %w", err)
	}

	s.log.InfoContext(ctx, "voter role changed",
		slog.String("voter_id", voter.ID.String()),
		slog.String("role", role.String()))
	return voter, nil
}
