package feed

import (
	"context"
	"testing"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisFeed(t *testing.T, prefix string) (*redisFeed, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisFeed(client, prefix, newDiscardLogger()).(*redisFeed), server
}

func TestRedisFeed_PublishReachesClientSubscriber(t *testing.T) {
	feed, _ := newTestRedisFeed(t, "")
	ctx := context.Background()
	clientID, otherID := uuid.New(), uuid.New()

	sub, err := feed.Subscribe(ctx, clientID)
	require.NoError(t, err)
	defer sub.Close()
	other, err := feed.Subscribe(ctx, otherID)
	require.NoError(t, err)
	defer other.Close()

	change := &entity.BalanceChange{
		ClientID: clientID,
		ShopID:   uuid.New(),
		Points:   25,
		NbVisit:  3,
		Reason:   entity.ChangeReasonGift,
		GiftKey:  "gift_partners_a_b",
		At:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, feed.Publish(ctx, change))

	got := receive(t, sub.Events())
	assert.True(t, change.At.Equal(got.At))
	got.At = change.At
	assert.Equal(t, change, got)
	assert.Empty(t, other.Events())
}

func TestRedisFeed_UsesChannelPrefix(t *testing.T) {
	feed, server := newTestRedisFeed(t, "tenant-a:")
	clientID := uuid.New()

	sub, err := feed.Subscribe(context.Background(), clientID)
	require.NoError(t, err)
	defer sub.Close()

	assert.Equal(t, "tenant-a:"+clientID.String(), feed.channel(clientID))
	assert.Equal(t, []string{"tenant-a:" + clientID.String()}, server.PubSubChannels(""))

	feed, _ = newTestRedisFeed(t, "")
	assert.Equal(t, defaultChannelPrefix+clientID.String(), feed.channel(clientID))
}

func TestRedisFeed_DropsMalformedPayload(t *testing.T) {
	feed, server := newTestRedisFeed(t, "")
	clientID := uuid.New()

	sub, err := feed.Subscribe(context.Background(), clientID)
	require.NoError(t, err)
	defer sub.Close()

	server.Publish(feed.channel(clientID), "not json")
	change := &entity.BalanceChange{ClientID: clientID, Points: 5, Reason: entity.ChangeReasonScan}
	require.NoError(t, feed.Publish(context.Background(), change))

	assert.Equal(t, change.Points, receive(t, sub.Events()).Points)
}

func TestRedisFeed_CloseEndsSubscription(t *testing.T) {
	feed, _ := newTestRedisFeed(t, "")

	sub, err := feed.Subscribe(context.Background(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	select {
	case _, open := <-sub.Events():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestRedisFeed_ContextCancelEndsSubscription(t *testing.T) {
	feed, _ := newTestRedisFeed(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := feed.Subscribe(ctx, uuid.New())
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-sub.Events():
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("events channel not closed")
	}
}

func TestRedisFeed_SubscribeFailsWhenServerDown(t *testing.T) {
	feed, server := newTestRedisFeed(t, "")
	server.Close()

	_, err := feed.Subscribe(context.Background(), uuid.New())
	assert.Error(t, err)
}
