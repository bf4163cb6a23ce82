// Package pubsub fans out tally updates to live subscribers of one election.
//
// Delivery is best-effort and at-most-once: a subscriber whose buffer is full
// misses the message, and new subscribers only see messages published after
// they subscribed.
package pubsub

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/heartmarshall/election-backend/internal/domain"
)

// Subscription receives the payloads published for one election.
type Subscription struct {
	C <-chan []byte

	ch       chan []byte
	hub      *Hub
	election domain.ElectionType
	once     sync.Once
}

// Close unregisters the subscription and closes C. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() { s.hub.remove(s) })
}

// Hub is the in-process subscriber registry.
type Hub struct {
	mu      sync.RWMutex
	subs    map[domain.ElectionType]map[*Subscription]struct{}
	buffer  int
	dropped atomic.Uint64
}

// NewHub creates a hub whose subscribers buffer up to buffer messages each.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[domain.ElectionType]map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a new subscriber for election.
func (h *Hub) Subscribe(election domain.ElectionType) *Subscription {
	ch := make(chan []byte, h.buffer)
	s := &Subscription{C: ch, ch: ch, hub: h, election: election}

	h.mu.Lock()
	if h.subs[election] == nil {
		h.subs[election] = make(map[*Subscription]struct{})
	}
	h.subs[election][s] = struct{}{}
	h.mu.Unlock()

	return s
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.subs[s.election]
	if !ok {
		return
	}
	if _, ok := subs[s]; ok {
		delete(subs, s)
		close(s.ch)
	}
	if len(subs) == 0 {
		delete(h.subs, s.election)
	}
}

// Publish delivers payload to the local subscribers of election. It never blocks.
func (h *Hub) Publish(_ context.Context, election domain.ElectionType, payload []byte) error {
	h.Deliver(election, payload)
	return nil
}

// Deliver sends payload to every current subscriber of election and returns
// how many received it.
func (h *Hub) Deliver(election domain.ElectionType, payload []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.subs[election] {
		select {
		case s.ch <- payload:
			delivered++
		default:
			h.dropped.Add(1)
		}
	}
	return delivered
}

// Subscribers returns the number of live subscribers of election.
func (h *Hub) Subscribers(election domain.ElectionType) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[election])
}

// Dropped returns how many deliveries were skipped because a buffer was full.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}
