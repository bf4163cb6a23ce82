// Package ballot implements the append-only ballot store using PostgreSQL.
//
// The ballots_one_per_election unique constraint is the authority on
// "one vote per voter per election": Cast never checks before inserting.
package ballot

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/domain"
)

const onePerElection = "ballots_one_per_election"

// Repo provides ballot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ballot repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const castSQL = `
INSERT INTO ballots (voter_id, candidate_id, election_type)
SELECT $1, c.id, c.election_type
FROM candidates c
WHERE c.id = $2
RETURNING id, voter_id, candidate_id, election_type, cast_at`

// Cast records a ballot for candidateID. The election type is taken from the
// candidate row. Returns domain.ErrCandidateNotFound when the candidate does
// not exist and domain.ErrAlreadyVoted when the voter already holds a ballot
// in that election.
func (r *Repo) Cast(ctx context.Context, voterID uuid.UUID, candidateID int64) (*domain.Ballot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b, err := scanBallot(q.QueryRow(ctx, castSQL, voterID, candidateID))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, fmt.Errorf("candidate %d: %w", candidateID, domain.ErrCandidateNotFound)
		case postgres.IsUniqueViolation(err, onePerElection):
			return nil, fmt.Errorf("voter %s: %w", voterID, domain.ErrAlreadyVoted)
		}
		return nil, postgres.MapError(err, "ballot", candidateID)
	}
	return b, nil
}

const getByVoterSQL = `
SELECT id, voter_id, candidate_id, election_type, cast_at
FROM ballots
WHERE voter_id = $1 AND election_type = $2`

// GetByVoter returns the voter's ballot in one election.
// Returns domain.ErrNotFound if the voter has not voted there.
func (r *Repo) GetByVoter(ctx context.Context, voterID uuid.UUID, election domain.ElectionType) (*domain.Ballot, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b, err := scanBallot(q.QueryRow(ctx, getByVoterSQL, voterID, string(election)))
	if err != nil {
		return nil, postgres.MapError(err, "ballot", election)
	}
	return b, nil
}

const votedElectionsSQL = `
SELECT election_type
FROM ballots
WHERE voter_id = $1
ORDER BY cast_at, id`

// VotedElections returns the election types the voter has voted in, oldest ballot first.
func (r *Repo) VotedElections(ctx context.Context, voterID uuid.UUID) ([]domain.ElectionType, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, votedElectionsSQL, voterID)
	if err != nil {
		return nil, postgres.MapError(err, "ballots", voterID)
	}
	defer rows.Close()

	out := []domain.ElectionType{}
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, postgres.MapError(err, "ballots", voterID)
		}
		out = append(out, domain.ElectionType(e))
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "ballots", voterID)
	}
	return out, nil
}

const countByElectionSQL = `SELECT COUNT(*) FROM ballots WHERE election_type = $1`

// CountByElection returns the number of ballots recorded in one election.
func (r *Repo) CountByElection(ctx context.Context, election domain.ElectionType) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, countByElectionSQL, string(election)).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "ballots", election)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanBallot(row pgx.Row) (*domain.Ballot, error) {
	var (
		b        domain.Ballot
		election string
	)
	if err := row.Scan(&b.ID, &b.VoterID, &b.CandidateID, &election, &b.CastAt); err != nil {
		return nil, err
	}
	b.ElectionType = domain.ElectionType(election)
	return &b, nil
}
