package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/election-backend/internal/auth"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. Unknown, revoked or expired tokens
// and tokens of removed voters yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "refresh token reuse attempted")
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	case token.IsExpired(time.Now()):
		return nil, domain.ErrUnauthorized
	}

	voter, err := s.voters.GetByID(ctx, token.VoterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for removed voter", slog.String("voter_id", token.VoterID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get voter: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(ctx, voter)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
