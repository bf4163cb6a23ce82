package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/election-backend/internal/config"
	authsvc "github.com/heartmarshall/election-backend/internal/service/auth"
	"github.com/heartmarshall/election-backend/internal/transport/middleware"
	"github.com/heartmarshall/election-backend/internal/transport/rest"
)

type routes struct {
	health  *rest.HealthHandler
	auth    *rest.AuthHandler
	vote    *rest.VoteHandler
	admin   *rest.AdminHandler
	ws      http.Handler
	limiter *middleware.RateLimiter
	tokens  *authsvc.Service
}

// newRouter registers every endpoint and wraps the mux in the global
// middleware chain. Auth runs outside Logger so request logs carry the voter id.
func newRouter(rt routes, cfg *config.Config, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.health.Live)
	mux.HandleFunc("GET /ready", rt.health.Ready)
	mux.HandleFunc("GET /health", rt.health.Health)

	authLimit := rt.limiter.Limit("auth", cfg.RateLimit.AuthPerMinute)
	castLimit := rt.limiter.Limit("cast", cfg.RateLimit.CastPerMinute)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(rt.auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(rt.auth.Login)))
	mux.Handle("POST /auth/refresh", authLimit(http.HandlerFunc(rt.auth.Refresh)))
	mux.Handle("POST /auth/logout", middleware.RequireAuth(http.HandlerFunc(rt.auth.Logout)))
	mux.Handle("GET /auth/me", middleware.RequireAuth(http.HandlerFunc(rt.auth.Me)))

	handleSlash(mux, "GET /candidates/{election_type}", http.HandlerFunc(rt.vote.ListCandidates))
	handleSlash(mux, "GET /party-votes/{election_type}", http.HandlerFunc(rt.vote.PartyTallies))
	handleSlash(mux, "POST /cast", middleware.RequireAuth(castLimit(http.HandlerFunc(rt.vote.Cast))))
	mux.Handle("GET /votes/me", middleware.RequireAuth(http.HandlerFunc(rt.vote.MyVotes)))

	mux.Handle("POST /admin/reconcile", middleware.AdminOnly(http.HandlerFunc(rt.admin.Reconcile)))

	handleSlash(mux, "GET /ws/votes/{election_type}", rt.ws)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(rt.tokens),
		middleware.Logger(logger),
	)(mux)
}

// handleSlash registers pattern both with and without a trailing slash.
func handleSlash(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, h)
	mux.Handle(pattern+"/{$}", h)
}
