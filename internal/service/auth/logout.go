package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated voter.
// Returns ErrUnauthorized if no voter ID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	voterID, ok := ctxutil.VoterIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByVoter(ctx, voterID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "voter logged out", slog.String("voter_id", voterID.String()))
	return nil
}

// ValidateToken validates an access token and returns the voter ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, accessToken string) (uuid.UUID, string, error) {
	voterID, role, err := s.jwt.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return voterID, role, nil
}

// CleanupExpiredTokens removes all expired refresh tokens from the database.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
