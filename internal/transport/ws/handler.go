// Package ws serves live tally updates over websockets.
package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/election-backend/internal/adapter/pubsub"
	"github.com/heartmarshall/election-backend/internal/domain"
)

type subscriber interface {
	Subscribe(election domain.ElectionType) *pubsub.Subscription
}

// Handler upgrades GET /ws/votes/{election_type}/ and streams every tally
// update of that election published after the upgrade.
type Handler struct {
	hub      subscriber
	upgrader websocket.Upgrader
	log      *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHandler creates a Handler. allowedOrigins is a comma-separated list;
// "*" accepts any origin. Requests without an Origin header are accepted.
func NewHandler(hub subscriber, allowedOrigins string, logger *slog.Logger) *Handler {
	origins := make(map[string]struct{})
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = struct{}{}
		}
	}
	_, anyOrigin := origins["*"]

	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || anyOrigin {
					return true
				}
				_, ok := origins[origin]
				return ok
			},
		},
		log:     logger.With("handler", "ws"),
		clients: make(map[*client]struct{}),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	election, err := domain.ParseElectionType(r.PathValue("election_type"))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()}) //nolint:errcheck
		return
	}

	// Upgrade writes its own error response.
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	c := &client{conn: conn, sub: h.hub.Subscribe(election), log: h.log.With("election_type", election.String())}
	if !h.track(c) {
		c.sub.Close()
		conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"))
		conn.Close()
		return
	}
	defer h.untrack(c)

	go c.writePump()
	c.readPump()
}

// Close ends every live connection with a close frame. Later upgrades are
// closed immediately.
func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		c.sub.Close()
	}
}

// Clients returns the number of live connections.
func (h *Handler) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Handler) track(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Handler) untrack(c *client) {
	c.sub.Close()

	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}
