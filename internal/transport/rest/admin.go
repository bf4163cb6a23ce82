package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/election-backend/internal/domain"
	"github.com/heartmarshall/election-backend/internal/service/vote"
)

type reconcileService interface {
	Reconcile(ctx context.Context, election domain.ElectionType) (*vote.ReconcileReport, error)
	ReconcileAll(ctx context.Context) ([]vote.ReconcileReport, error)
}

// AdminHandler serves operator REST endpoints. Routes must be wrapped in
// middleware.AdminOnly.
type AdminHandler struct {
	reconcile reconcileService
	log       *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(reconcile reconcileService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reconcile: reconcile,
		log:       logger.With("handler", "admin"),
	}
}

type reconcileResponse struct {
	Reports []vote.ReconcileReport `json:"reports"`
}

// Reconcile recounts tallies from ballots.
// POST /admin/reconcile?election_type=presidential (all elections when omitted)
func (h *AdminHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("election_type")
	if raw == "" {
		reports, err := h.reconcile.ReconcileAll(r.Context())
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reconcileResponse{Reports: reports})
		return
	}

	election, err := domain.ParseElectionType(raw)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	report, err := h.reconcile.Reconcile(r.Context(), election)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reconcileResponse{Reports: []vote.ReconcileReport{*report}})
}
