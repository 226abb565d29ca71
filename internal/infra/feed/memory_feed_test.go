package feed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func receive(t *testing.T, ch <-chan *entity.BalanceChange) *entity.BalanceChange {
	t.Helper()

	select {
	case change, ok := <-ch:
		require.True(t, ok, "channel closed")

		return change
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change")

		return nil
	}
}

func TestMemoryFeed_FanOutToClientSubscribers(t *testing.T) {
	feed := NewMemoryFeed(newDiscardLogger())
	ctx := context.Background()
	clientID, otherID := uuid.New(), uuid.New()

	first, err := feed.Subscribe(ctx, clientID)
	require.NoError(t, err)
	second, err := feed.Subscribe(ctx, clientID)
	require.NoError(t, err)
	other, err := feed.Subscribe(ctx, otherID)
	require.NoError(t, err)

	change := &entity.BalanceChange{ClientID: clientID, Points: 10, Reason: entity.ChangeReasonScan}
	require.NoError(t, feed.Publish(ctx, change))

	assert.Equal(t, change, receive(t, first.Events()))
	assert.Equal(t, change, receive(t, second.Events()))
	assert.Empty(t, other.Events())

	require.NoError(t, first.Close())
	require.NoError(t, second.Close())
	require.NoError(t, other.Close())
}

func TestMemoryFeed_CloseIsIdempotentAndClosesChannel(t *testing.T) {
	feed := NewMemoryFeed(newDiscardLogger())
	clientID := uuid.New()

	sub, err := feed.Subscribe(context.Background(), clientID)
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	_, ok := <-sub.Events()
	assert.False(t, ok)

	// Publishing after close must not panic
	require.NoError(t, feed.Publish(context.Background(), &entity.BalanceChange{ClientID: clientID}))
}

func TestMemoryFeed_ContextCancelEndsSubscription(t *testing.T) {
	feed := NewMemoryFeed(newDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := feed.Subscribe(ctx, uuid.New())
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-sub.Events():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not closed after context cancel")
	}
}

func TestMemoryFeed_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	feed := NewMemoryFeed(newDiscardLogger())
	clientID := uuid.New()

	sub, err := feed.Subscribe(context.Background(), clientID)
	require.NoError(t, err)
	defer sub.Close()

	for range defaultSubscriptionBuffer + 5 {
		require.NoError(t, feed.Publish(context.Background(), &entity.BalanceChange{ClientID: clientID}))
	}

	assert.Len(t, sub.Events(), defaultSubscriptionBuffer)
}
