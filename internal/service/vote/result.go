package vote

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// CandidateView is the public representation of a candidate.
type CandidateView struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Party         string              `json:"party"`
	Age           int                 `json:"age"`
	ElectionType  domain.ElectionType `json:"election_type"`
	ImageURL      *string             `json:"image_url"`
	PartyImageURL *string             `json:"party_image_url"`
	PartyVotes    int64               `json:"party_votes"`
	UserVoted     bool                `json:"user_voted"`
}

// CandidatePage is one page of a candidate listing.
type CandidatePage struct {
	Count    int             `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Results  []CandidateView `json:"results"`
}

// PartyTallyView is the public representation of a party tally.
type PartyTallyView struct {
	Party         string              `json:"party"`
	VoteCount     int64               `json:"vote_count"`
	ElectionType  domain.ElectionType `json:"election_type"`
	PartyImageURL *string             `json:"party_image_url"`
}

// PartyTallyList is the tallies of one election, highest count first.
type PartyTallyList struct {
	ElectionType domain.ElectionType `json:"election_type"`
	Tallies      []PartyTallyView    `json:"tallies"`
}

// CastResult is returned by CastVote.
type CastResult struct {
	Message   string
	Ballot    domain.Ballot
	Candidate CandidateView
}

// VoterStatus lists which elections the caller has and has not voted in.
type VoterStatus struct {
	VoterID uuid.UUID             `json:"voter_id"`
	Voted   []domain.ElectionType `json:"voted"`
	Pending []domain.ElectionType `json:"pending"`
}

// ReconcileReport is the outcome of one reconciliation of an election.
type ReconcileReport struct {
	ElectionType domain.ElectionType `json:"election_type"`
	Ballots      int64               `json:"ballots"`
	Drift        []domain.TallyDrift `json:"drift"`
	Repaired     bool                `json:"repaired"`
}

// Err returns an error wrapping domain.ErrInconsistency when drift was found.
func (r ReconcileReport) Err() error {
	if len(r.Drift) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %d parties drifted: %w", r.ElectionType, len(r.Drift), domain.ErrInconsistency)
}

// MessagePartyCountsUpdate is the type of broadcast tally messages.
const MessagePartyCountsUpdate = "party_counts_update"

// TallyUpdate is the envelope of a broadcast tally message.
type TallyUpdate struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ---------------------------------------------------------------------------
// View mapping
// ---------------------------------------------------------------------------

func toCandidateView(c domain.Candidate, partyVotes int64, userVoted bool) CandidateView {
	return CandidateView{
		ID:            c.ID,
		Name:          c.Name,
		Party:         c.Party,
		Age:           c.Age,
		ElectionType:  c.ElectionType,
		ImageURL:      refOrNil(c.ImageRef),
		PartyImageURL: refOrNil(c.PartyImageRef),
		PartyVotes:    partyVotes,
		UserVoted:     userVoted,
	}
}

func toPartyTallyView(t domain.PartyTally) PartyTallyView {
	return PartyTallyView{
		Party:         t.Party,
		VoteCount:     t.VoteCount,
		ElectionType:  t.ElectionType,
		PartyImageURL: refOrNil(t.PartyImageRef),
	}
}

func refOrNil(ref string) *string {
	if ref == "" {
		return nil
	}
	return &ref
}
