package cache

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// View kinds cached per election.
const (
	KindCandidates = "candidates"
	KindTallies    = "tallies"
)

// ElectionScope returns the invalidation prefix for every view of one election.
func ElectionScope(e domain.ElectionType) string {
	return "election:" + string(e) + ":"
}

// Key identifies one cached view. The stored key is
// <scope>g<generation>:<kind>[:<params>][:voter:<id>].
type Key struct {
	Scope   string
	Kind    string
	Params  string
	VoterID string
}

// CandidatesKey is the key of one candidate listing page. voterID is empty for anonymous callers.
func CandidatesKey(e domain.ElectionType, params, voterID string) Key {
	return Key{Scope: ElectionScope(e), Kind: KindCandidates, Params: params, VoterID: voterID}
}

// TalliesKey is the key of the party tallies view of one election.
func TalliesKey(e domain.ElectionType) Key {
	return Key{Scope: ElectionScope(e), Kind: KindTallies}
}

func (k Key) format(gen uint64) string {
	var b strings.Builder
	b.WriteString(k.Scope)
	b.WriteByte('g')
	b.WriteString(strconv.FormatUint(gen, 10))
	b.WriteByte(':')
	b.WriteString(k.Kind)
	if k.Params != "" {
		b.WriteByte(':')
		b.WriteString(k.Params)
	}
	if k.VoterID != "" {
		b.WriteString(":voter:")
		b.WriteString(k.VoterID)
	}
	return b.String()
}
