package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is read-only reference data loaded by administrators.
type Candidate struct {
	ID            int64
	ElectionType  ElectionType
	Name          string
	Party         string
	Age           int
	ImageRef      string
	PartyImageRef string
	CreatedAt     time.Time
}

// Ballot is a single recorded vote. Ballots are append-only.
type Ballot struct {
	ID           int64
	VoterID      uuid.UUID
	CandidateID  int64
	ElectionType ElectionType
	CastAt       time.Time
}

// PartyTally is the aggregate vote count of a party within one election.
type PartyTally struct {
	ElectionType  ElectionType
	Party         string
	VoteCount     int64
	PartyImageRef string
	UpdatedAt     time.Time
}

// PartyCount is a party's ballot count as recomputed from the ballots table.
type PartyCount struct {
	Party         string
	Ballots       int64
	PartyImageRef string
}

// TallyDrift describes a party whose stored tally differs from its recount.
type TallyDrift struct {
	ElectionType ElectionType
	Party        string
	Stored       int64
	Recounted    int64
}

// Delta returns recounted minus stored.
func (d TallyDrift) Delta() int64 { return d.Recounted - d.Stored }
