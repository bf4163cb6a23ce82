package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// Register creates a new voter with a password credential.
// Returns ErrAlreadyExists if the national ID or VIN is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input = input.normalize()

	// Step 1: Validate input
	now := time.Now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}
	dob, _ := time.Parse(DateLayout, input.DateOfBirth)

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create voter + credential in a transaction.
	// National ID and VIN uniqueness are enforced by DB constraints.
	var created *domain.Voter

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		voter, err := s.voters.Create(txCtx, &domain.Voter{
			NationalID:  input.NationalID,
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			DateOfBirth: dob,
			State:       input.State,
			LGA:         input.LGA,
			VIN:         input.VIN,
			Role:        domain.VoterRoleVoter,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create voter: %w", err)
		}

		if err := s.voters.SetCredential(txCtx, voter.ID, string(hash)); err != nil {
			return fmt.Errorf("set credential: %w", err)
		}

		created = voter
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue tokens
	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "voter registered",
		slog.String("voter_id", created.ID.String()))

	return result, nil
}
