// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tokenColumns = `id, voter_id, token_hash, expires_at, created_at, revoked_at`

const createSQL = `
INSERT INTO refresh_tokens (voter_id, token_hash, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + tokenColumns

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, voterID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanToken(q.QueryRow(ctx, createSQL, voterID, tokenHash, expiresAt))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", voterID)
	}
	return t, nil
}

const getByHashSQL = `
SELECT ` + tokenColumns + `
FROM refresh_tokens
WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	t, err := scanToken(q.QueryRow(ctx, getByHashSQL, tokenHash))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return t, nil
}

const revokeByIDSQL = `UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeByIDSQL, id); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

const revokeAllByVoterSQL = `UPDATE refresh_tokens SET revoked_at = now() WHERE voter_id = $1 AND revoked_at IS NULL`

// RevokeAllByVoter revokes all active refresh tokens for the given voter.
func (r *Repo) RevokeAllByVoter(ctx context.Context, voterID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, revokeAllByVoterSQL, voterID); err != nil {
		return postgres.MapError(err, "refresh_token", voterID)
	}
	return nil
}

const deleteExpiredSQL = `DELETE FROM refresh_tokens WHERE expires_at <= now() OR revoked_at IS NOT NULL`

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.VoterID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
