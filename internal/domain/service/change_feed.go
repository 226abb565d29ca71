package service

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeFeed fans balance changes out to the subscribers of a client.
type ChangeFeed interface {
	// Publish delivers a change to the current subscribers of change.ClientID.
	Publish(ctx context.Context, change *entity.BalanceChange) error

	// Subscribe opens a subscription owned by the caller, who must Close it.
	Subscribe(ctx context.Context, clientID uuid.UUID) (Subscription, error)
}

// Subscription is an explicit handle on a client's balance changes.
type Subscription interface {
	// Events is closed once the subscription is closed or its context ends.
	Events() <-chan *entity.BalanceChange

	// Close releases the subscription. It is safe to call more than once.
	Close() error
}
