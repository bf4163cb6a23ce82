package vote

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// CastVoteInput holds parameters for casting a vote.
type CastVoteInput struct {
	CandidateID int64
}

// Validate checks the input.
func (i CastVoteInput) Validate() error {
	if i.CandidateID <= 0 {
		return domain.NewValidationError("candidate", "must be a positive candidate id")
	}
	return nil
}

// ListCandidatesInput holds parameters for one page of candidates.
type ListCandidatesInput struct {
	ElectionType string
	Search       string
	Party        string
	Page         int // 1-based; 0 means the first page
	PageSize     int // 0 means the default; values above the maximum are clamped
}

// Validate checks the input.
func (i ListCandidatesInput) Validate() error {
	var errs []domain.FieldError

	if _, err := domain.ParseElectionType(i.ElectionType); err != nil {
		errs = append(errs, domain.FieldError{Field: "election_type", Message: "must be one of presidential, governorship, senatorial"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be positive"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be positive"})
	}
	if i.Page > 1 && i.PageSize >= 0 {
		// The offset (page-1)*limit must fit in an int.
		f := domain.CandidateFilter{Limit: i.PageSize}
		f.Normalize()
		if i.Page-1 > math.MaxInt/f.Limit {
			errs = append(errs, domain.FieldError{Field: "page", Message: "too large"})
		}
	}
	if len(i.Search) > 100 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long (max 100)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// filter converts a validated input into a repository filter and the 1-based page number.
func (i ListCandidatesInput) filter() (domain.CandidateFilter, int) {
	election, _ := domain.ParseElectionType(i.ElectionType)
	page := max(i.Page, 1)

	f := domain.CandidateFilter{
		ElectionType: election,
		Search:       i.Search,
		Party:        i.Party,
		Limit:        i.PageSize,
	}
	f.Normalize()
	f.Offset = (page - 1) * f.Limit
	return f, page
}

// cacheParams renders f and page as the params segment of a cache key.
func cacheParams(f domain.CandidateFilter, page int) string {
	return fmt.Sprintf("p%d:s%d:q=%s:party=%s",
		page, f.Limit,
		url.QueryEscape(strings.ToLower(f.Search)),
		url.QueryEscape(strings.ToLower(f.Party)),
	)
}
