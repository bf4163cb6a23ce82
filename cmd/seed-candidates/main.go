// Command seed-candidates loads candidates from a JSON file in one transaction.
//
// Usage:
//
//	seed-candidates --file=candidates.json
//
// The file holds an array of objects:
//
//	[{"election_type": "presidential", "name": "Ada Obi", "party": "APC",
//	  "age": 52, "image": "candidates/ada.jpg", "party_image": "parties/apc.png"}]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/election-backend/internal/adapter/postgres"
	"github.com/heartmarshall/election-backend/internal/adapter/postgres/candidate"
	"github.com/heartmarshall/election-backend/internal/domain"
)

type candidateRecord struct {
	ElectionType string `json:"election_type"`
	Name         string `json:"name"`
	Party        string `json:"party"`
	Age          int    `json:"age"`
	Image        string `json:"image"`
	PartyImage   string `json:"party_image"`
}

func main() {
	file := flag.String("file", "", "path to the candidates JSON file")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: seed-candidates --file=candidates.json")
		os.Exit(1)
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open %s: %v", *file, err)
	}
	candidates, err := parseCandidates(f)
	f.Close()
	if err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := candidate.New(pool)
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		for i := range candidates {
			if _, err := repo.Create(ctx, &candidates[i]); err != nil {
				return fmt.Errorf("candidate %q: %w", candidates[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("seed candidates: %v", err)
	}

	fmt.Printf("Seeded %d candidates.\n", len(candidates))
}

// parseCandidates decodes and validates the seed file. Every record is checked
// so one run reports all problems.
func parseCandidates(r io.Reader) ([]domain.Candidate, error) {
	var records []candidateRecord
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no candidates in file")
	}

	var (
		out  = make([]domain.Candidate, 0, len(records))
		errs []domain.FieldError
	)
	for i, rec := range records {
		field := func(name string) string { return fmt.Sprintf("[%d].%s", i, name) }

		election, err := domain.ParseElectionType(rec.ElectionType)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: field("election_type"), Message: "unknown election type"})
		}
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: field("name"), Message: "required"})
		}
		party := strings.TrimSpace(rec.Party)
		if party == "" {
			errs = append(errs, domain.FieldError{Field: field("party"), Message: "required"})
		}
		if rec.Age <= 0 || rec.Age > 150 {
			errs = append(errs, domain.FieldError{Field: field("age"), Message: "out of range"})
		}

		out = append(out, domain.Candidate{
			ElectionType:  election,
			Name:          name,
			Party:         party,
			Age:           rec.Age,
			ImageRef:      strings.TrimSpace(rec.Image),
			PartyImageRef: strings.TrimSpace(rec.PartyImage),
		})
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return out, nil
}
