// Package candidate implements the read-only candidate catalog using PostgreSQL.
package candidate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var columns = []string{
	"id", "election_type", "name", "party", "age", "image_ref", "party_image_ref", "created_at",
}

// Repo provides candidate lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new candidate repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a candidate. Returns domain.ErrCandidateNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Select(columns...).From("candidates").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	var row candidateRow
	err = q.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.ElectionType, &row.Name, &row.Party, &row.Age,
		&row.ImageRef, &row.PartyImageRef, &row.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("candidate %d: %w", id, domain.ErrCandidateNotFound)
		}
		return nil, postgres.MapError(err, "candidate", id)
	}

	c := row.toDomain()
	return &c, nil
}

// List returns one page of candidates ordered by name, then id.
func (r *Repo) List(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	f.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := applyFilter(psql.Select(columns...).From("candidates"), f).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate list query: %w", err)
	}

	var rows []candidateRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "candidates", f.ElectionType)
	}

	out := make([]domain.Candidate, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Count returns the number of candidates matching f, ignoring pagination.
func (r *Repo) Count(ctx context.Context, f domain.CandidateFilter) (int, error) {
	f.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := applyFilter(psql.Select("COUNT(*)").From("candidates"), f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build candidate count query: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "candidates", f.ElectionType)
	}
	return n, nil
}

// Create inserts a candidate and returns it with its assigned id.
func (r *Repo) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := psql.Insert("candidates").
		Columns("election_type", "name", "party", "age", "image_ref", "party_image_ref").
		Values(string(c.ElectionType), c.Name, c.Party, c.Age, c.ImageRef, c.PartyImageRef).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate insert: %w", err)
	}

	created := *c
	if err := q.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, postgres.MapError(err, "candidate", c.Name)
	}
	return &created, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type candidateRow struct {
	ID            int64     `db:"id"`
	ElectionType  string    `db:"election_type"`
	Name          string    `db:"name"`
	Party         string    `db:"party"`
	Age           int       `db:"age"`
	ImageRef      string    `db:"image_ref"`
	PartyImageRef string    `db:"party_image_ref"`
	CreatedAt     time.Time `db:"created_at"`
}

func (row candidateRow) toDomain() domain.Candidate {
	return domain.Candidate{
		ID:            row.ID,
		ElectionType:  domain.ElectionType(row.ElectionType),
		Name:          row.Name,
		Party:         row.Party,
		Age:           row.Age,
		ImageRef:      row.ImageRef,
		PartyImageRef: row.PartyImageRef,
		CreatedAt:     row.CreatedAt,
	}
}
