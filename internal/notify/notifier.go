package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Notifier delivers outbound notifications. Delivery is best-effort: callers
// must never fail a request because a notification could not be sent.
type Notifier interface {
	NotifyApplicationReceived(ctx context.Context, e ApplicationReceivedEvent) error
}

// NoopNotifier is used when notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) NotifyApplicationReceived(context.Context, ApplicationReceivedEvent) error {
	return nil
}

// RedisNotifier publishes events to a redis channel for the downstream
// mailer worker to pick up.
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
	logger  *zap.Logger
}

func NewRedisNotifier(rdb *redis.Client, channel string, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel, logger: logger}
}

func (n *RedisNotifier) NotifyApplicationReceived(ctx context.Context, e ApplicationReceivedEvent) error {
	payload := struct {
		Type string                   `json:"type"`
		Data ApplicationReceivedEvent `json:"data"`
	}{Type: "application_received", Data: e}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := n.rdb.Publish(ctx, n.channel, data).Err(); err != nil {
		n.logger.Warn("publish notification failed",
			zap.Uint("application_id", e.ApplicationID),
			zap.Error(err))
		return err
	}
	return nil
}
