package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// Login authenticates a voter with national ID + password.
// Returns ErrUnauthorized if the national ID is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.NationalID = strings.TrimSpace(input.NationalID)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	voter, err := s.voters.GetByNationalID(ctx, input.NationalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get voter: %w", err)
	}

	cred, err := s.voters.GetCredential(ctx, voter.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, voter)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "voter logged in",
		slog.String("voter_id", voter.ID.String()))

	return result, nil
}
