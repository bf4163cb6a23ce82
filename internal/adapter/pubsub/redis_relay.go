package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/election-backend/internal/domain"
)

const channelPrefix = "election.tally."

// RedisRelay carries published payloads between server instances through Redis
// and hands received ones to the local hub.
type RedisRelay struct {
	client *redis.Client
	hub    *Hub
	log    *slog.Logger
	ready  chan struct{}
}

// NewRedisRelay creates a relay. Run must be started for remote payloads to reach hub.
func NewRedisRelay(client *redis.Client, hub *Hub, logger *slog.Logger) *RedisRelay {
	return &RedisRelay{
		client: client,
		hub:    hub,
		log:    logger.With("module", "pubsub.relay"),
		ready:  make(chan struct{}),
	}
}

// Channel returns the Redis channel of one election.
func Channel(election domain.ElectionType) string {
	return channelPrefix + string(election)
}

// Publish sends payload to every instance, this one included.
func (r *RedisRelay) Publish(ctx context.Context, election domain.ElectionType, payload []byte) error {
	if err := r.client.Publish(ctx, Channel(election), payload).Err(); err != nil {
		return fmt.Errorf("pubsub.Publish %s: %w", election, err)
	}
	return nil
}

// Ready is closed once Run has an active subscription.
func (r *RedisRelay) Ready() <-chan struct{} {
	return r.ready
}

// Run subscribes to every election channel and delivers into the hub until ctx is done.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.client.PSubscribe(ctx, channelPrefix+"*")
	defer func() { _ = sub.Close() }()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("pubsub.Run subscribe: %w", err)
	}
	close(r.ready)
	r.log.InfoContext(ctx, "relay subscribed", slog.String("pattern", channelPrefix+"*"))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			election := domain.ElectionType(strings.TrimPrefix(msg.Channel, channelPrefix))
			if !election.IsValid() {
				r.log.WarnContext(ctx, "relay message on unknown channel", slog.String("channel", msg.Channel))
				continue
			}
			r.hub.Deliver(election, []byte(msg.Payload))
		}
	}
}
