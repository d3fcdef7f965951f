// Package notify forwards controller state changes to out-of-process render
// layers over Redis Pub/Sub. Nothing is stored: a subscriber that is not
// listening when a state is published simply misses it.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/cor0nius/weatherwidget/internal/view"
	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "weatherwidget:state"

const publishTimeout = 2 * time.Second

type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (p *RedisPublisher) Channel() string {
	return p.channel
}

// Publish sends the rendered view of r to the channel.
func (p *RedisPublisher) Publish(ctx context.Context, r lookup.Result) error {
	payload, err := json.Marshal(view.FromResult(r))
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish state to %s: %w", p.channel, err)
	}
	return nil
}

// Observe is a lookup.Controller subscriber. Publish errors are logged and
// never reach the lookup.
func (p *RedisPublisher) Observe(r lookup.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, r); err != nil {
		p.logger.Warn("error publishing lookup state", "lookup_id", r.ID.String(), "state", r.State.String(), "error", err)
		return
	}
	p.logger.Debug("published lookup state", "channel", p.channel, "state", r.State.String())
}
