// Package feed implements balance change subscriptions.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
)

const defaultSubscriptionBuffer = 16

// memoryFeed fans changes out inside a single process.
type memoryFeed struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[*memorySubscription]struct{}
	buffer int
	logger *slog.Logger
}

// NewMemoryFeed creates an in-process change feed.
func NewMemoryFeed(logger *slog.Logger) service.ChangeFeed {
	return &memoryFeed{
		subs:   make(map[uuid.UUID]map[*memorySubscription]struct{}),
		buffer: defaultSubscriptionBuffer,
		logger: logger,
	}
}

// Publish delivers the change without blocking; a full subscriber misses it.
func (f *memoryFeed) Publish(ctx context.Context, change *entity.BalanceChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for sub := range f.subs[change.ClientID] {
		select {
		case sub.events <- change:
		default:
			f.logger.WarnContext(ctx, "[MemoryFeed] Subscriber buffer full, dropping change",
				slog.String("client_id", change.ClientID.String()),
			)
		}
	}

	return nil
}

// Subscribe registers a subscription that ends with ctx or Close.
func (f *memoryFeed) Subscribe(ctx context.Context, clientID uuid.UUID) (service.Subscription, error) {
	sub := &memorySubscription{
		feed:     f,
		clientID: clientID,
		events:   make(chan *entity.BalanceChange, f.buffer),
		done:     make(chan struct{}),
	}

	f.mu.Lock()
	if f.subs[clientID] == nil {
		f.subs[clientID] = make(map[*memorySubscription]struct{})
	}
	f.subs[clientID][sub] = struct{}{}
	f.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub, nil
}

func (f *memoryFeed) remove(sub *memorySubscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs[sub.clientID], sub)
	if len(f.subs[sub.clientID]) == 0 {
		delete(f.subs, sub.clientID)
	}
	close(sub.events)
}

type memorySubscription struct {
	feed      *memoryFeed
	clientID  uuid.UUID
	events    chan *entity.BalanceChange
	done      chan struct{}
	closeOnce sync.Once
}

func (s *memorySubscription) Events() <-chan *entity.BalanceChange {
	return s.events
}

func (s *memorySubscription) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.feed.remove(s)
	})

	return nil
}
