// Package auth implements voter registration, login and token rotation.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/election-backend/internal/config"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// voterRepo defines the voter repository interface needed by auth service.
type voterRepo interface {
	Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.Voter, error)
	SetRole(ctx context.Context, nationalID string, role domain.VoterRole) (*domain.Voter, error)
	SetCredential(ctx context.Context, voterID uuid.UUID, passwordHash string) error
	GetCredential(ctx context.Context, voterID uuid.UUID) (*domain.VoterCredential, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, voterID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByVoter(ctx context.Context, voterID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(voterID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	voters voterRepo
	tokens tokenRepo
	tx     txManager
	jwt    jwtManager
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	voters voterRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		voters: voters,
		tokens: tokens,
		tx:     tx,
		jwt:    jwt,
		cfg:    cfg,
	}
}

// issueTokens generates access and refresh tokens for the given voter, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, voter *domain.Voter) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(voter.ID, voter.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, voter.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Voter:        voter,
	}, nil
}
