package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultChannelPrefix = "loyalty:client:"

// redisFeed fans changes out across instances through Redis pub/sub.
type redisFeed struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisFeed creates a change feed publishing on one channel per client.
func NewRedisFeed(client *redis.Client, prefix string, logger *slog.Logger) service.ChangeFeed {
	if prefix == "" {
		prefix = defaultChannelPrefix
	}

	return &redisFeed{client: client, prefix: prefix, logger: logger}
}

func (f *redisFeed) channel(clientID uuid.UUID) string {
	return f.prefix + clientID.String()
}

// Publish sends the change to the client's channel
func (f *redisFeed) Publish(ctx context.Context, change *entity.BalanceChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := f.client.Publish(ctx, f.channel(change.ClientID), data).Err(); err != nil {
		return errors.Wrap(err, "failed to publish balance change")
	}

	return nil
}

// Subscribe listens on the client's channel until ctx ends or Close is called
func (f *redisFeed) Subscribe(ctx context.Context, clientID uuid.UUID) (service.Subscription, error) {
	ps := f.client.Subscribe(ctx, f.channel(clientID))

	// Wait for the subscription confirmation so no change published afterwards is missed
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()

		return nil, errors.Wrap(err, "failed to subscribe to balance changes")
	}

	sub := &redisSubscription{
		ps:     ps,
		events: make(chan *entity.BalanceChange, defaultSubscriptionBuffer),
		done:   make(chan struct{}),
	}

	go sub.forward(ctx, f.logger)

	return sub, nil
}

type redisSubscription struct {
	ps        *redis.PubSub
	events    chan *entity.BalanceChange
	done      chan struct{}
	closeOnce sync.Once
}

func (s *redisSubscription) forward(ctx context.Context, logger *slog.Logger) {
	defer close(s.events)

	messages := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.Close()

			return
		case <-s.done:
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var change entity.BalanceChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				logger.WarnContext(ctx, "[RedisFeed] Dropping malformed change",
					slog.String("channel", msg.Channel),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case s.events <- &change:
			case <-s.done:
				return
			case <-ctx.Done():
				_ = s.Close()

				return
			}
		}
	}
}

func (s *redisSubscription) Events() <-chan *entity.BalanceChange {
	return s.events
}

func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})

	return errors.WithStack(err)
}
