package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/internal/service/vote"
)

// voteService defines the minimal interface needed by VoteHandler.
type voteService interface {
	ListCandidates(ctx context.Context, input vote.ListCandidatesInput) ([]byte, error)
	PartyTallies(ctx context.Context, electionType string) ([]byte, error)
	CastVote(ctx context.Context, input vote.CastVoteInput) (*vote.CastResult, error)
	VoterStatus(ctx context.Context) (*vote.VoterStatus, error)
}

// VoteHandler serves candidate, tally and ballot endpoints.
type VoteHandler struct {
	svc voteService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, log: logger.With("handler", "vote")}
}

type castRequest struct {
	Candidate int64 `json:"candidate"`
}

type castResponse struct {
	Message   string             `json:"message"`
	Candidate vote.CandidateView `json:"candidate"`
}

// ListCandidates handles GET /candidates/{election_type}/.
func (h *VoteHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, perr := queryInt(q.Get("page"), "page")
	pageSize, serr := queryInt(q.Get("page_size"), "page_size")
	if errs := append(perr, serr...); len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	body, err := h.svc.ListCandidates(r.Context(), vote.ListCandidatesInput{
		ElectionType: r.PathValue("election_type"),
		Search:       q.Get("search"),
		Party:        q.Get("party"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, body)
}

// PartyTallies handles GET /party-votes/{election_type}/.
func (h *VoteHandler) PartyTallies(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.PartyTallies(r.Context(), r.PathValue("election_type"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeRaw(w, http.StatusOK, body)
}

// Cast handles POST /cast/.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.CastVote(r.Context(), vote.CastVoteInput{CandidateID: req.Candidate})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, castResponse{
		Message:   result.Message,
		Candidate: result.Candidate,
	})
}

// MyVotes handles GET /votes/me.
func (h *VoteHandler) MyVotes(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.VoterStatus(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// queryInt parses an optional integer query parameter. Empty means zero.
func queryInt(raw, field string) (int, []domain.FieldError) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, []domain.FieldError{{Field: field, Message: "must be an integer"}}
	}
	return n, nil
}
