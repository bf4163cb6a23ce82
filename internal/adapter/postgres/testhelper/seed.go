package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// vinAlphabet excludes I, O and Q.
const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// RandomNationalID returns an 11-digit national ID.
func RandomNationalID() string {
	return fmt.Sprintf("%011d", rand.Int64N(100_000_000_000))
}

// RandomVIN returns a 17-character voter identification number.
func RandomVIN() string {
	var b strings.Builder
	for range 17 {
		b.WriteByte(vinAlphabet[rand.IntN(len(vinAlphabet))])
	}
	return b.String()
}

// NewVoterFixture returns an adult voter with unique identifiers. It is not persisted.
func NewVoterFixture() domain.Voter {
	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := UniqueSuffix()
	return domain.Voter{
		ID:          uuid.New(),
		NationalID:  RandomNationalID(),
		FirstName:   "Test",
		LastName:    "Voter " + suffix,
		DateOfBirth: time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC),
		State:       "Lagos",
		LGA:         "Ikeja",
		VIN:         RandomVIN(),
		Role:        domain.VoterRoleVoter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// InsertVoter persists v through q.
func InsertVoter(ctx context.Context, q execer, v domain.Voter) error {
	_, err := q.Exec(ctx,
		`INSERT INTO voters (id, national_id, first_name, last_name, date_of_birth, state, lga, vin, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		v.ID, v.NationalID, v.FirstName, v.LastName, v.DateOfBirth, v.State, v.LGA, v.VIN, string(v.Role), v.CreatedAt, v.UpdatedAt,
	)
	return err
}

// SeedVoter creates a voter and returns it.
func SeedVoter(t *testing.T, pool *pgxpool.Pool) domain.Voter {
	t.Helper()

	v := NewVoterFixture()
	if err := InsertVoter(context.Background(), pool, v); err != nil {
		t.Fatalf("testhelper: SeedVoter insert: %v", err)
	}
	return v
}

// SeedVoters creates n voters.
func SeedVoters(t *testing.T, pool *pgxpool.Pool, n int) []domain.Voter {
	t.Helper()

	voters := make([]domain.Voter, n)
	for i := range voters {
		voters[i] = SeedVoter(t, pool)
	}
	return voters
}

// UniqueParty returns a party name no other test uses, so tallies never collide.
func UniqueParty(prefix string) string {
	return prefix + "-" + UniqueSuffix()
}

// SeedCandidate creates a candidate in the given election and party.
func SeedCandidate(t *testing.T, pool *pgxpool.Pool, election domain.ElectionType, party string) domain.Candidate {
	t.Helper()
	ctx := context.Background()

	c := domain.Candidate{
		ElectionType:  election,
		Name:          "Candidate " + UniqueSuffix(),
		Party:         party,
		Age:           52,
		ImageRef:      "candidates/" + UniqueSuffix() + ".jpg",
		PartyImageRef: "parties/" + strings.ToLower(party) + ".png",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO candidates (election_type, name, party, age, image_ref, party_image_ref)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		string(c.ElectionType), c.Name, c.Party, c.Age, c.ImageRef, c.PartyImageRef,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCandidate insert: %v", err)
	}
	return c
}

// CountBallots returns the number of ballots cast for candidates of party in election.
func CountBallots(t *testing.T, pool *pgxpool.Pool, election domain.ElectionType, party string) int64 {
	t.Helper()

	var n int64
	err := pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ballots b JOIN candidates c ON c.id = b.candidate_id
		 WHERE b.election_type = $1 AND c.party = $2`,
		string(election), party,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountBallots: %v", err)
	}
	return n
}

// TallyCount returns the stored tally of party in election, or 0 when the row does not exist.
func TallyCount(t *testing.T, pool *pgxpool.Pool, election domain.ElectionType, party string) int64 {
	t.Helper()

	var n int64
	err := pool.QueryRow(context.Background(),
		`SELECT COALESCE((SELECT vote_count FROM party_tallies WHERE election_type = $1 AND party = $2), 0)`,
		string(election), party,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: TallyCount: %v", err)
	}
	return n
}
