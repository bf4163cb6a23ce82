// Package tally implements the per-(election, party) vote aggregates using PostgreSQL.
package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/domain"
)

// Repo provides tally reads and atomic increments backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new tally repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tallyColumns = `election_type, party, vote_count, party_image_ref, updated_at`

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

const incrementSQL = `
INSERT INTO party_tallies (election_type, party, vote_count, party_image_ref)
VALUES ($1, $2, 1, $3)
ON CONFLICT (election_type, party) DO UPDATE
SET vote_count      = party_tallies.vote_count + 1,
    party_image_ref = COALESCE(NULLIF(party_tallies.party_image_ref, ''), EXCLUDED.party_image_ref),
    updated_at      = now()
RETURNING ` + tallyColumns

// Increment adds one vote to the party's tally, creating the row on first use.
// An empty stored image is backfilled from partyImageRef.
func (r *Repo) Increment(ctx context.Context, election domain.ElectionType, party, partyImageRef string) (*domain.PartyTally, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row tallyRow
	if err := pgxscan.Get(ctx, q, &row, incrementSQL, string(election), party, partyImageRef); err != nil {
		return nil, postgres.MapError(err, "tally", party)
	}
	t := row.toDomain()
	return &t, nil
}

const setCountSQL = `
INSERT INTO party_tallies (election_type, party, vote_count, party_image_ref)
VALUES ($1, $2, $3, $4)
ON CONFLICT (election_type, party) DO UPDATE
SET vote_count      = EXCLUDED.vote_count,
    party_image_ref = COALESCE(NULLIF(party_tallies.party_image_ref, ''), EXCLUDED.party_image_ref),
    updated_at      = now()`

// SetCount overwrites the party's tally. Used only by reconciliation.
func (r *Repo) SetCount(ctx context.Context, election domain.ElectionType, party string, count int64, partyImageRef string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, setCountSQL, string(election), party, count, partyImageRef); err != nil {
		return postgres.MapError(err, "tally", party)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

const getTalliesSQL = `
SELECT ` + tallyColumns + `
FROM party_tallies
WHERE election_type = $1
ORDER BY vote_count DESC, party ASC`

// GetTallies returns every tally of the election, highest count first,
// ties broken by party name ascending.
func (r *Repo) GetTallies(ctx context.Context, election domain.ElectionType) ([]domain.PartyTally, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []tallyRow
	if err := pgxscan.Select(ctx, q, &rows, getTalliesSQL, string(election)); err != nil {
		return nil, postgres.MapError(err, "tallies", election)
	}

	out := make([]domain.PartyTally, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

const getTallySQL = `
SELECT ` + tallyColumns + `
FROM party_tallies
WHERE election_type = $1 AND party = $2`

// GetTally returns one party's tally. Returns domain.ErrNotFound if no vote was ever counted.
func (r *Repo) GetTally(ctx context.Context, election domain.ElectionType, party string) (*domain.PartyTally, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row tallyRow
	if err := pgxscan.Get(ctx, q, &row, getTallySQL, string(election), party); err != nil {
		return nil, postgres.MapError(err, "tally", party)
	}
	t := row.toDomain()
	return &t, nil
}

const recountSQL = `
SELECT c.party, COUNT(b.id) AS ballots, COALESCE(MAX(NULLIF(c.party_image_ref, '')), '') AS party_image_ref
FROM ballots b
JOIN candidates c ON c.id = b.candidate_id
WHERE b.election_type = $1
GROUP BY c.party
ORDER BY c.party`

// Recount recomputes per-party counts directly from the ballots table.
func (r *Repo) Recount(ctx context.Context, election domain.ElectionType) ([]domain.PartyCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []partyCountRow
	if err := pgxscan.Select(ctx, q, &rows, recountSQL, string(election)); err != nil {
		return nil, postgres.MapError(err, "recount", election)
	}

	var out []domain.PartyCount
	for _, row := range rows {
		out = append(out, domain.PartyCount{Party: row.Party, Ballots: row.Ballots, PartyImageRef: row.PartyImageRef})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Election locks
// ---------------------------------------------------------------------------

// Vote casts take the shared lock, reconciliation takes the exclusive one, so a
// recount never observes a ballot whose increment has not committed yet.
// Both are transaction-scoped and must be called inside RunInTx.

const (
	lockSharedSQL    = `SELECT pg_advisory_xact_lock_shared(hashtext('ballots:' || $1))`
	lockExclusiveSQL = `SELECT pg_advisory_xact_lock(hashtext('ballots:' || $1))`
)

// LockElectionShared blocks while a reconciliation of the election is running.
func (r *Repo) LockElectionShared(ctx context.Context, election domain.ElectionType) error {
	return r.lock(ctx, lockSharedSQL, election)
}

// LockElectionExclusive waits for in-flight casts of the election to finish.
func (r *Repo) LockElectionExclusive(ctx context.Context, election domain.ElectionType) error {
	return r.lock(ctx, lockExclusiveSQL, election)
}

func (r *Repo) lock(ctx context.Context, sql string, election domain.ElectionType) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("tally.lock %s: advisory lock requires a transaction", election)
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, sql, string(election)); err != nil {
		return postgres.MapError(err, "election lock", election)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type tallyRow struct {
	ElectionType  string    `db:"election_type"`
	Party         string    `db:"party"`
	VoteCount     int64     `db:"vote_count"`
	PartyImageRef string    `db:"party_image_ref"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row tallyRow) toDomain() domain.PartyTally {
	return domain.PartyTally{
		ElectionType:  domain.ElectionType(row.ElectionType),
		Party:         row.Party,
		VoteCount:     row.VoteCount,
		PartyImageRef: row.PartyImageRef,
		UpdatedAt:     row.UpdatedAt,
	}
}

type partyCountRow struct {
	Party         string `db:"party"`
	Ballots       int64  `db:"ballots"`
	PartyImageRef string `db:"party_image_ref"`
}
