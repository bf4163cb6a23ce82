// Package voter implements voter account and credential persistence using PostgreSQL.
package voter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// Repo provides voter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new voter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const voterColumns = `id, national_id, first_name, last_name, date_of_birth, state, lga, vin,
	profile_image_ref, role, created_at, updated_at`

// ---------------------------------------------------------------------------
// Voters
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO voters (id, national_id, first_name, last_name, date_of_birth, state, lga, vin, profile_image_ref, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + voterColumns

// Create inserts a voter. A zero ID is replaced by a new UUID.
// Duplicate national IDs or VINs return domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, v *domain.Voter) (*domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := v.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := v.Role
	if role == "" {
		role = domain.VoterRoleVoter
	}

	row := q.QueryRow(ctx, createSQL,
		id, v.NationalID, v.FirstName, v.LastName, v.DateOfBirth, v.State, v.LGA, v.VIN,
		v.ProfileImageRef, string(role),
	)
	created, err := scanVoter(row)
	if err != nil {
		switch {
		case postgres.IsUniqueViolation(err, "voters_national_id_key"):
			return nil, fmt.Errorf("national_id: %w", domain.ErrAlreadyExists)
		case postgres.IsUniqueViolation(err, "voters_vin_key"):
			return nil, fmt.Errorf("vin: %w", domain.ErrAlreadyExists)
		}
		return nil, postgres.MapError(err, "voter", v.NationalID)
	}
	return created, nil
}

const getByIDSQL = `SELECT ` + voterColumns + ` FROM voters WHERE id = $1`

// GetByID returns a voter. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scanVoter(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "voter", id)
	}
	return v, nil
}

const getByNationalIDSQL = `SELECT ` + voterColumns + ` FROM voters WHERE national_id = $1`

// GetByNationalID returns a voter by national ID. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scanVoter(q.QueryRow(ctx, getByNationalIDSQL, nationalID))
	if err != nil {
		return nil, postgres.MapError(err, "voter", nationalID)
	}
	return v, nil
}

const setRoleSQL = `
UPDATE voters SET role = $2, updated_at = now()
WHERE national_id = $1
RETURNING ` + voterColumns

// SetRole changes a voter's role, identified by national ID.
func (r *Repo) SetRole(ctx context.Context, nationalID string, role domain.VoterRole) (*domain.Voter, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scanVoter(q.QueryRow(ctx, setRoleSQL, nationalID, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "voter", nationalID)
	}
	return v, nil
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

const upsertCredentialSQL = `
INSERT INTO voter_credentials (voter_id, password_hash)
VALUES ($1, $2)
ON CONFLICT (voter_id) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()`

// SetCredential stores the voter's password hash, replacing any previous one.
func (r *Repo) SetCredential(ctx context.Context, voterID uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, upsertCredentialSQL, voterID, passwordHash); err != nil {
		return postgres.MapError(err, "voter_credential", voterID)
	}
	return nil
}

const getCredentialSQL = `SELECT voter_id, password_hash, updated_at FROM voter_credentials WHERE voter_id = $1`

// GetCredential returns the voter's password hash. Returns domain.ErrNotFound if none is set.
func (r *Repo) GetCredential(ctx context.Context, voterID uuid.UUID) (*domain.VoterCredential, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var c domain.VoterCredential
	if err := q.QueryRow(ctx, getCredentialSQL, voterID).Scan(&c.VoterID, &c.PasswordHash, &c.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "voter_credential", voterID)
	}
	return &c, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanVoter(row pgx.Row) (*domain.Voter, error) {
	var (
		v    domain.Voter
		role string
	)
	err := row.Scan(
		&v.ID, &v.NationalID, &v.FirstName, &v.LastName, &v.DateOfBirth, &v.State, &v.LGA, &v.VIN,
		&v.ProfileImageRef, &role, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.Role = domain.VoterRole(role)
	return &v, nil
}
