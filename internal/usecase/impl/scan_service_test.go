package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	mockSvc "loyalty/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScanService_FirstScanCreatesRegistration(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-first", 50, 100)
	client := eng.seedCompleteClient()

	result, err := eng.scan(t, client.ID, shop.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TierNew, result.Tier)
	assert.Equal(t, 10, result.AwardedPoints)
	assert.Equal(t, 10, result.NewBalance)
	assert.Equal(t, 1, result.NbVisit)

	reg, err := eng.store.NewRegistrationRepository().FindRegistration(context.Background(), client.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reg.Points)
	assert.Equal(t, eng.clock.Now(), reg.LastVisit)
	assert.Equal(t, client.Name, reg.Snapshot.Name)
	assert.True(t, reg.NotificationsActive)
}

func TestScanService_CooldownRejectsAndChangesNothing(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-cooldown", 100)
	clientID := uuid.New()

	_, err := eng.scan(t, clientID, shop.ID)
	require.NoError(t, err)
	firstVisit := eng.clock.Now()

	eng.clock.Advance(10 * time.Minute)
	_, err = eng.scan(t, clientID, shop.ID)

	cooldown, ok := errors.Cause(err).(*domainerrors.CooldownActiveError)
	require.True(t, ok, "expected a cooldown error, got %v", err)
	assert.Equal(t, firstVisit.Add(30*time.Minute), cooldown.RetryAt())

	reg, err := eng.store.NewRegistrationRepository().FindRegistration(context.Background(), clientID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, reg.Points)
	assert.Equal(t, 1, reg.NbVisit)
	assert.Equal(t, firstVisit, reg.LastVisit)
}

func TestScanService_StandardThenVIP(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-tiers", 1000)
	clientID := uuid.New()

	expected := []struct {
		tier    entity.Tier
		balance int
	}{
		{entity.TierNew, 10},
		{entity.TierStandard, 15},
		{entity.TierStandard, 20},
		{entity.TierVIP, 28},
		{entity.TierVIP, 36},
	}

	for i, want := range expected {
		result, err := eng.scan(t, clientID, shop.ID)
		require.NoError(t, err, "scan %d", i+1)
		assert.Equal(t, want.tier, result.Tier, "scan %d", i+1)
		assert.Equal(t, want.balance, result.NewBalance, "scan %d", i+1)
		assert.Equal(t, i+1, result.NbVisit)

		eng.clock.Advance(31 * time.Minute)
	}
}

func TestScanService_SaturatesAtLadderCap(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-cap", 50, 100)
	clientID := uuid.New()
	eng.store.SeedRegistration(&entity.Registration{
		ClientID:  clientID,
		ShopID:    shop.ID,
		Points:    97,
		NbVisit:   1,
		LastVisit: eng.clock.Now().Add(-time.Hour),
	})

	result, err := eng.scan(t, clientID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.NewBalance)
	assert.Equal(t, 5, result.AwardedPoints)

	eng.clock.Advance(time.Hour)
	result, err = eng.scan(t, clientID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.NewBalance)
}

func TestScanService_UnknownShop(t *testing.T) {
	eng := createTestEngine(t)

	_, err := eng.scan(t, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestScanService_ScanTag(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("counter-1", 100)

	result, err := eng.scans.ScanTag(context.Background(), uuid.New(), loyalty.TagPayload{Text: "https://loyalty.example.com/t/counter-1"})
	eng.scans.propagation.Wait()
	require.NoError(t, err)
	assert.Equal(t, shop.ID, result.ShopID)

	_, err = eng.scans.ScanTag(context.Background(), uuid.New(), loyalty.TagPayload{Text: "counter-2"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTag)
}

func TestScanService_PublishesVisitAndBalanceChange(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-events", 100)
	clientID := uuid.New()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().
		PublishVisitEvent(mock.Anything, mock.MatchedBy(func(event *service.VisitEvent) bool {
			return event.ClientID == clientID.String() &&
				event.ShopID == shop.ID.String() &&
				event.Tier == "new" &&
				event.BalanceAfter == 10
		})).
		Return(nil).
		Once()
	eng.scans.publisher = publisher

	sub, err := eng.wallet.Subscribe(context.Background(), clientID)
	require.NoError(t, err)
	defer sub.Close()

	_, err = eng.scan(t, clientID, shop.ID)
	require.NoError(t, err)

	select {
	case change := <-sub.Events():
		assert.Equal(t, entity.ChangeReasonScan, change.Reason)
		assert.Equal(t, 10, change.Points)
		assert.Equal(t, shop.ID, change.ShopID)
	case <-time.After(time.Second):
		t.Fatal("no balance change received")
	}
}

func TestScanService_PublishFailureDoesNotFailScan(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-publish", 100)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishVisitEvent(mock.Anything, mock.Anything).Return(errors.New("queue down")).Once()
	eng.scans.publisher = publisher

	result, err := eng.scan(t, uuid.New(), shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.NewBalance)
}

func TestScanService_ConcurrentFirstScansRecordOnce(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-race", 100)
	clientID := uuid.New()

	const scanners = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		cooldowns int
	)
	for range scanners {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := eng.scans.RecordScan(context.Background(), clientID, shop.ID)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if _, ok := errors.Cause(err).(*domainerrors.CooldownActiveError); ok {
				cooldowns++
			}
		}()
	}
	wg.Wait()
	eng.scans.propagation.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, scanners-1, cooldowns)

	reg, err := eng.store.NewRegistrationRepository().FindRegistration(context.Background(), clientID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.NbVisit)
	assert.Equal(t, 10, reg.Points)
}

// racingStore loses the registration creation race a fixed number of times.
type racingStore struct {
	repository.TransactionManager
	losses int
	calls  int
}

func (s *racingStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	s.calls++
	if s.calls <= s.losses {
		return repository.ErrConcurrentModification
	}

	return s.TransactionManager.Execute(ctx, fn)
}

func TestScanService_RetriesLostCreationRace(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-retry", 100)

	racing := &racingStore{TransactionManager: eng.store, losses: 2}
	eng.scans.txManager = racing

	result, err := eng.scan(t, uuid.New(), shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, racing.calls)
	assert.Equal(t, 10, result.NewBalance)
}

func TestScanService_GivesUpAfterRetries(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-giveup", 100)

	racing := &racingStore{TransactionManager: eng.store, losses: 10}
	eng.scans.txManager = racing

	_, err := eng.scan(t, uuid.New(), shop.ID)

	require.Error(t, err)
	assert.Equal(t, 3, racing.calls)
	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "PERSISTENCE_ERROR", appErr.ErrorCode())
}

func TestScanService_CooldownScanDoesNotPropagate(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-home", 100)
	partner := eng.seedShop("tag-neighbour", 100)
	clientID := uuid.New()

	_, err := eng.scan(t, clientID, scanning.ID)
	require.NoError(t, err)

	// The partnership starts after the first visit.
	eng.seedLink(scanning.ID, partner.ID, offering("Free coffee"), offering("Free croissant"))

	eng.clock.Advance(10 * time.Minute)
	_, err = eng.scan(t, clientID, scanning.ID)
	_, blocked := errors.Cause(err).(*domainerrors.CooldownActiveError)
	require.True(t, blocked, "expected a cooldown error, got %v", err)

	gifts, err := eng.wallet.ListGifts(context.Background(), clientID)
	require.NoError(t, err)
	assert.Empty(t, gifts)

	eng.clock.Advance(30 * time.Minute)
	_, err = eng.scan(t, clientID, scanning.ID)
	require.NoError(t, err)

	gifts, err = eng.wallet.ListGifts(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, partner.ID, gifts[0].ShopID)
}

func TestScanService_SaturatedScanStillPropagates(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-full", 100)
	partner := eng.seedShop("tag-next-door", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("Free coffee"), offering("Free croissant"))
	clientID := uuid.New()
	eng.store.SeedRegistration(&entity.Registration{
		ClientID:  clientID,
		ShopID:    scanning.ID,
		Points:    100,
		NbVisit:   1,
		LastVisit: eng.clock.Now().Add(-time.Hour),
	})

	result, err := eng.scan(t, clientID, scanning.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, result.NewBalance)
	assert.Equal(t, 2, result.NbVisit)

	gift, err := eng.store.NewGiftRepository().FindGift(context.Background(), clientID, entity.NewGiftKey(scanning.ID, partner.ID))
	require.NoError(t, err)
	assert.Equal(t, "Free croissant", gift.Reward.Value)
}
