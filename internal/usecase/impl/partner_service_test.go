package impl

import (
	"context"
	"sync"
	"testing"

	"loyalty/internal/domain/constants"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerService_GrantsGiftOfCounterpart(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-scanning", 100)
	partner := eng.seedShop("tag-partner", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("Free coffee"), offering("Free croissant"))
	clientID := uuid.New()

	_, err := eng.scan(t, clientID, scanning.ID)
	require.NoError(t, err)

	key := entity.NewGiftKey(scanning.ID, partner.ID)
	gift, err := eng.store.NewGiftRepository().FindGift(context.Background(), clientID, key)
	require.NoError(t, err)
	assert.Equal(t, partner.ID, gift.ShopID)
	assert.Equal(t, scanning.ID, gift.PartnerShopID)
	assert.Equal(t, "Free croissant", gift.Reward.Value)
	assert.False(t, gift.Used)
}

func TestPartnerService_ReportOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(eng *engineFixtures, scanning, partner *entity.Shop, clientID uuid.UUID)
		want  usecase.PartnerOutcome
	}{
		{
			name: "granted",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, _ uuid.UUID) {
				eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
			},
			want: usecase.PartnerOutcomeGranted,
		},
		{
			name: "counterpart side inactive",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, _ uuid.UUID) {
				eng.seedLink(scanning.ID, partner.ID, offering("A"), entity.PartnerSide{Active: false})
			},
			want: usecase.PartnerOutcomeNotOffered,
		},
		{
			name: "counterpart side without reward",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, _ uuid.UUID) {
				eng.seedLink(scanning.ID, partner.ID, offering("A"), entity.PartnerSide{Active: true})
			},
			want: usecase.PartnerOutcomeNotOffered,
		},
		{
			name: "already a customer of the counterpart",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, clientID uuid.UUID) {
				eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
				eng.store.SeedRegistration(&entity.Registration{ClientID: clientID, ShopID: partner.ID, NbVisit: 1})
			},
			want: usecase.PartnerOutcomeExistingCustomer,
		},
		{
			name: "gift already granted",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, clientID uuid.UUID) {
				eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
				eng.store.SeedGift(&entity.Gift{
					ClientID: clientID,
					Key:      entity.NewGiftKey(scanning.ID, partner.ID),
					ShopID:   partner.ID,
					Used:     true,
				})
			},
			want: usecase.PartnerOutcomeAlreadyGranted,
		},
		{
			name: "scanning shop is side B",
			setup: func(eng *engineFixtures, scanning, partner *entity.Shop, _ uuid.UUID) {
				eng.seedLink(partner.ID, scanning.ID, offering("B"), offering("A"))
			},
			want: usecase.PartnerOutcomeGranted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := createTestEngine(t)
			scanning := eng.seedShop("tag-a", 100)
			partner := eng.seedShop("tag-b", 100)
			clientID := uuid.New()
			tt.setup(eng, scanning, partner, clientID)

			report, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
			require.NoError(t, err)
			require.Len(t, report.Links, 1)

			outcome := report.Links[0]
			assert.Equal(t, tt.want, outcome.Outcome)
			assert.Equal(t, partner.ID, outcome.Counterpart)
			assert.Equal(t, entity.NewGiftKey(scanning.ID, partner.ID), outcome.Key)
			assert.NoError(t, outcome.Err)
		})
	}
}

func TestPartnerService_OneGiftPerLink(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
	clientID := uuid.New()

	first, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
	require.NoError(t, err)
	second, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Count(usecase.PartnerOutcomeGranted))
	assert.Equal(t, 1, second.Count(usecase.PartnerOutcomeAlreadyGranted))

	gifts, err := eng.wallet.ListGifts(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, gifts, 1)
}

func TestPartnerService_ConcurrentPropagationGrantsOnce(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
	clientID := uuid.New()

	const runs = 6
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			report, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			granted += report.Count(usecase.PartnerOutcomeGranted)
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted)
	gifts, err := eng.wallet.ListGifts(context.Background(), clientID)
	require.NoError(t, err)
	assert.Len(t, gifts, 1)
}

func TestPartnerService_InconsistentLinkDoesNotStopOthers(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	eng.seedLink(scanning.ID, scanning.ID, offering("A"), offering("A"))
	eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("B"))
	clientID := uuid.New()

	report, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
	require.NoError(t, err)
	require.Len(t, report.Links, 2)

	assert.Equal(t, 1, report.Count(usecase.PartnerOutcomeInconsistent))
	assert.Equal(t, 1, report.Count(usecase.PartnerOutcomeGranted))
	for _, link := range report.Links {
		if link.Outcome == usecase.PartnerOutcomeInconsistent {
			assert.ErrorIs(t, link.Err, domainerrors.ErrPartnerLinkInconsistent)
		}
	}
}

func TestPartnerService_NotifiesDevicesAndDropsInvalidTokens(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("A"), entity.PartnerSide{
		Active:         true,
		RewardSelected: &entity.GiftReward{Value: "Free dessert", Description: "Any dessert of the day"},
	})
	clientID := uuid.New()

	devices := eng.store.NewClientRepository()
	for _, token := range []string{"token-valid", "token-stale"} {
		require.NoError(t, devices.UpsertDevice(context.Background(), &entity.ClientDevice{
			ClientID: clientID,
			DeviceID: "device-" + token,
			FCMToken: token,
			Platform: "ios",
		}))
	}

	notifier := mockSvc.NewMockNotificationService(t)
	notifier.EXPECT().
		SendBatchNotification(
			mock.Anything,
			mock.MatchedBy(func(tokens []string) bool { return assert.ElementsMatch(t, []string{"token-valid", "token-stale"}, tokens) }),
			"You received a partner gift",
			"Free dessert - Any dessert of the day",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["type"] == constants.NotificationTypePartnerGift &&
					data["gift_key"] == entity.NewGiftKey(scanning.ID, partner.ID).String() &&
					data["shop_id"] == partner.ID.String() &&
					data["partner_shop_id"] == scanning.ID.String()
			}),
		).
		Return(1, 1, []string{"token-stale"}, nil).
		Once()
	eng.partners.(*partnerService).notifier = notifier

	report, err := eng.partners.PropagatePartnerGifts(context.Background(), clientID, scanning.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(usecase.PartnerOutcomeGranted))

	active, err := devices.FindActiveDevicesByClient(context.Background(), clientID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-valid", active[0].FCMToken)
}

func TestPartnerService_NoLinks(t *testing.T) {
	eng := createTestEngine(t)
	shop := eng.seedShop("tag-alone", 100)

	report, err := eng.partners.PropagatePartnerGifts(context.Background(), uuid.New(), shop.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Links)
}
