package domain

// Candidate listing page size bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CandidateFilter contains filtering/pagination parameters for candidate listings.
type CandidateFilter struct {
	// ElectionType is required.
	ElectionType ElectionType

	// Search performs ILIKE '%...%' on name. Empty means no text filter.
	Search string

	// Party matches the party name case-insensitively. Empty means every party.
	Party string

	// Limit is the page size. Default: 10, max: 100.
	Limit int

	// Offset is the number of candidates to skip.
	Offset int
}

// Normalize applies defaults and clamps values.
func (f *CandidateFilter) Normalize() {
	f.Search = NormalizeQuery(f.Search)
	f.Party = NormalizeQuery(f.Party)

	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
