package vote

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// Publisher delivers a rendered broadcast message to subscribers of one election.
type Publisher interface {
	Publish(ctx context.Context, election domain.ElectionType, payload []byte) error
}

// Notifier turns tally changes into broadcast messages off the request path.
// Changes to an election that is already queued are coalesced into one message.
type Notifier struct {
	render func(ctx context.Context, election domain.ElectionType) ([]byte, error)
	pub    Publisher
	queue  chan domain.ElectionType
	log    *slog.Logger

	mu      sync.Mutex
	pending map[domain.ElectionType]bool
}

// NewNotifier creates a notifier that renders views with render and hands them to pub.
func NewNotifier(
	render func(ctx context.Context, election domain.ElectionType) ([]byte, error),
	pub Publisher,
	queueSize int,
	logger *slog.Logger,
) *Notifier {
	if queueSize <= 0 {
		queueSize = len(domain.ElectionTypes)
	}
	return &Notifier{
		render:  render,
		pub:     pub,
		queue:   make(chan domain.ElectionType, queueSize),
		log:     logger.With("module", "vote.notifier"),
		pending: make(map[domain.ElectionType]bool),
	}
}

// TallyChanged schedules a broadcast for election. It never blocks.
func (n *Notifier) TallyChanged(election domain.ElectionType) {
	n.mu.Lock()
	if n.pending[election] {
		n.mu.Unlock()
		return
	}
	n.pending[election] = true
	n.mu.Unlock()

	select {
	case n.queue <- election:
	default:
		n.done(election)
		n.log.Warn("broadcast queue full, update dropped", slog.String("election_type", election.String()))
	}
}

// Run publishes queued updates until ctx is done.
func (n *Notifier) Run(ctx context.Context) error {
	n.log.InfoContext(ctx, "notifier started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case election := <-n.queue:
			// Cleared before rendering so a change during the render is queued again.
			n.done(election)
			n.publish(ctx, election)
		}
	}
}

// Flush publishes every queued update synchronously and returns. Used by
// one-shot commands that exit without a running notifier.
func (n *Notifier) Flush(ctx context.Context) {
	for {
		select {
		case election := <-n.queue:
			n.done(election)
			n.publish(ctx, election)
		default:
			return
		}
	}
}

func (n *Notifier) done(election domain.ElectionType) {
	n.mu.Lock()
	delete(n.pending, election)
	n.mu.Unlock()
}

func (n *Notifier) publish(ctx context.Context, election domain.ElectionType) {
	if n.pub == nil {
		return
	}

	view, err := n.render(ctx, election)
	if err != nil {
		n.log.ErrorContext(ctx, "render tallies for broadcast",
			slog.String("event", "broadcast_failed"),
			slog.String("election_type", election.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	msg, err := json.Marshal(TallyUpdate{Type: MessagePartyCountsUpdate, Payload: view})
	if err != nil {
		n.log.ErrorContext(ctx, "marshal broadcast", slog.String("error", err.Error()))
		return
	}

	if err := n.pub.Publish(ctx, election, msg); err != nil {
		n.log.WarnContext(ctx, "publish tally update",
			slog.String("event", "broadcast_failed"),
			slog.String("election_type", election.String()),
			slog.String("error", err.Error()),
		)
	}
}
