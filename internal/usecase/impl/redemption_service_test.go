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
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedRedemptionShop stores a shop with a single reward costing cost points.
func (eng *engineFixtures) seedRedemptionShop(cost int) (*entity.Shop, *entity.RewardDefinition) {
	shop := eng.seedShop("tag-redeem-"+uuid.NewString()[:8], cost)
	ladder, err := eng.wallet.ListRewards(context.Background(), shop.ID)
	if err != nil || len(ladder) != 1 {
		panic("seeded shop has no reward")
	}

	return shop, ladder[0]
}

func TestRedemptionService_PointsSuccess(t *testing.T) {
	eng := createTestEngine(t)
	shop, reward := eng.seedRedemptionShop(50)
	client := eng.seedCompleteClient()
	eng.store.SeedRegistration(&entity.Registration{ClientID: client.ID, ShopID: shop.ID, Points: 70, NbVisit: 9})

	metrics := mockSvc.NewMockMetrics(t)
	metrics.EXPECT().ObserveRedemption("points", "success").Return().Once()
	eng.redemptions.(*redemptionService).metrics = metrics

	sub, err := eng.wallet.Subscribe(context.Background(), client.ID)
	require.NoError(t, err)
	defer sub.Close()

	result, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, shop.ID, usecase.RedemptionTarget{RewardID: &reward.ID})
	require.NoError(t, err)

	assert.Equal(t, loyalty.RedemptionSuccess, result.State)
	assert.Equal(t, entity.RedemptionKindPoints, result.Kind)
	assert.Equal(t, 20, result.BalanceAfter)
	assert.Equal(t, 70, result.Record.PointsBefore)
	assert.Equal(t, 50, result.Record.Cost)

	reg, err := eng.wallet.GetRegistration(context.Background(), client.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, reg.Points)
	assert.Equal(t, 9, reg.NbVisit)

	history, err := eng.wallet.ListRedemptions(context.Background(), client.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, result.Record.ID, history[0].ID)

	select {
	case change := <-sub.Events():
		assert.Equal(t, entity.ChangeReasonRedemption, change.Reason)
		assert.Equal(t, 20, change.Points)
	case <-time.After(time.Second):
		t.Fatal("no balance change received")
	}
}

func TestRedemptionService_Refusals(t *testing.T) {
	tests := []struct {
		name     string
		complete bool
		points   int
		hasCard  bool
		wantErr  *domainerrors.BaseError
		outcome  string
	}{
		{name: "insufficient points", complete: true, points: 49, hasCard: true, wantErr: domainerrors.ErrInsufficientPoints, outcome: "rejected"},
		{name: "no card at the shop", complete: true, wantErr: domainerrors.ErrInsufficientPoints, outcome: "rejected"},
		{name: "incomplete profile", complete: false, points: 500, hasCard: true, wantErr: domainerrors.ErrIncompleteProfile, outcome: "blocked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := createTestEngine(t)
			shop, reward := eng.seedRedemptionShop(50)

			clientID := uuid.New()
			if tt.complete {
				clientID = eng.seedCompleteClient().ID
			} else {
				eng.store.SeedClient(&entity.ClientProfile{ID: clientID, Name: "Half done"})
			}
			if tt.hasCard {
				eng.store.SeedRegistration(&entity.Registration{ClientID: clientID, ShopID: shop.ID, Points: tt.points, NbVisit: 1})
			}

			metrics := mockSvc.NewMockMetrics(t)
			metrics.EXPECT().ObserveRedemption("points", tt.outcome).Return().Once()
			eng.redemptions.(*redemptionService).metrics = metrics

			result, err := eng.redemptions.ConfirmRedemption(context.Background(), clientID, shop.ID, usecase.RedemptionTarget{RewardID: &reward.ID})

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.hasCard {
				reg, err := eng.wallet.GetRegistration(context.Background(), clientID, shop.ID)
				require.NoError(t, err)
				assert.Equal(t, tt.points, reg.Points)
			}
			history, err := eng.wallet.ListRedemptions(context.Background(), clientID, 0, 0)
			require.NoError(t, err)
			assert.Empty(t, history)
		})
	}
}

func TestRedemptionService_IncompleteProfileCarriesCompletionPath(t *testing.T) {
	eng := createTestEngine(t)
	shop, reward := eng.seedRedemptionShop(10)
	clientID := uuid.New()
	eng.store.SeedRegistration(&entity.Registration{ClientID: clientID, ShopID: shop.ID, Points: 10, NbVisit: 1})

	_, err := eng.redemptions.ConfirmRedemption(context.Background(), clientID, shop.ID, usecase.RedemptionTarget{RewardID: &reward.ID})

	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "INCOMPLETE_PROFILE", appErr.ErrorCode())
	assert.Equal(t, domainerrors.ProfileCompletionPath, appErr.Details())
}

func TestRedemptionService_UnknownReward(t *testing.T) {
	eng := createTestEngine(t)
	shop, _ := eng.seedRedemptionShop(10)
	client := eng.seedCompleteClient()
	unknown := uuid.New()

	_, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, shop.ID, usecase.RedemptionTarget{RewardID: &unknown})
	assert.ErrorIs(t, err, domainerrors.ErrRewardNotFound)
}

func TestRedemptionService_TargetMustBeExactlyOne(t *testing.T) {
	eng := createTestEngine(t)
	rewardID := uuid.New()

	for name, target := range map[string]usecase.RedemptionTarget{
		"none": {},
		"both": {RewardID: &rewardID, GiftKey: "gift_partners_x"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := eng.redemptions.ConfirmRedemption(context.Background(), uuid.New(), uuid.New(), target)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRedemptionService_GiftIsOneShot(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	eng.seedLink(scanning.ID, partner.ID, offering("A"), offering("Free croissant"))
	client := eng.seedCompleteClient()

	_, err := eng.scan(t, client.ID, scanning.ID)
	require.NoError(t, err)

	target := usecase.RedemptionTarget{GiftKey: entity.NewGiftKey(scanning.ID, partner.ID)}

	result, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, partner.ID, target)
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionKindGift, result.Kind)
	assert.Equal(t, "Free croissant", result.Record.Value)
	assert.Equal(t, 0, result.Record.Cost)

	_, err = eng.redemptions.ConfirmRedemption(context.Background(), client.ID, partner.ID, target)
	assert.ErrorIs(t, err, domainerrors.ErrGiftAlreadyUsed)

	gifts, err := eng.wallet.ListGifts(context.Background(), client.ID)
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.True(t, gifts[0].Used)
	require.NotNil(t, gifts[0].UsedAt)
	assert.Equal(t, eng.clock.Now(), *gifts[0].UsedAt)
}

func TestRedemptionService_GiftOnlyAtIssuingShop(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	client := eng.seedCompleteClient()
	key := entity.NewGiftKey(scanning.ID, partner.ID)
	eng.store.SeedGift(&entity.Gift{
		ClientID:      client.ID,
		Key:           key,
		ShopID:        partner.ID,
		PartnerShopID: scanning.ID,
		Reward:        entity.GiftReward{Value: "Free croissant"},
	})

	_, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, scanning.ID, usecase.RedemptionTarget{GiftKey: key})
	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)

	_, err = eng.redemptions.ConfirmRedemption(context.Background(), client.ID, partner.ID, usecase.RedemptionTarget{GiftKey: "gift_partners_unknown"})
	assert.ErrorIs(t, err, domainerrors.ErrGiftNotFound)
}

func TestRedemptionService_ConcurrentGiftRedemptionSucceedsOnce(t *testing.T) {
	eng := createTestEngine(t)
	partner := eng.seedShop("tag-b", 100)
	client := eng.seedCompleteClient()
	key := entity.NewGiftKey(uuid.New(), partner.ID)
	eng.store.SeedGift(&entity.Gift{ClientID: client.ID, Key: key, ShopID: partner.ID, Reward: entity.GiftReward{Value: "Tote bag"}})

	const attempts = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		used      int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, partner.ID, usecase.RedemptionTarget{GiftKey: key})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, domainerrors.ErrGiftAlreadyUsed):
				used++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, used)

	history, err := eng.wallet.ListRedemptions(context.Background(), client.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestRedemptionService_ConcurrentPointsNeverGoNegative(t *testing.T) {
	eng := createTestEngine(t)
	shop, reward := eng.seedRedemptionShop(40)
	client := eng.seedCompleteClient()
	eng.store.SeedRegistration(&entity.Registration{ClientID: client.ID, ShopID: shop.ID, Points: 100, NbVisit: 5})

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = eng.redemptions.ConfirmRedemption(context.Background(), client.ID, shop.ID, usecase.RedemptionTarget{RewardID: &reward.ID})
		}()
	}
	wg.Wait()

	reg, err := eng.wallet.GetRegistration(context.Background(), client.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, reg.Points)

	history, err := eng.wallet.ListRedemptions(context.Background(), client.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRedemptionService_NilRewardIDWithGiftKeyRedeemsGift(t *testing.T) {
	eng := createTestEngine(t)
	scanning := eng.seedShop("tag-a", 100)
	partner := eng.seedShop("tag-b", 100)
	client := eng.seedCompleteClient()
	key := entity.NewGiftKey(scanning.ID, partner.ID)
	eng.store.SeedGift(&entity.Gift{
		ClientID:      client.ID,
		Key:           key,
		ShopID:        partner.ID,
		PartnerShopID: scanning.ID,
		Reward:        entity.GiftReward{Value: "Free croissant"},
	})

	nilReward := uuid.Nil
	result, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, partner.ID,
		usecase.RedemptionTarget{RewardID: &nilReward, GiftKey: key})
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionKindGift, result.Kind)
	assert.Equal(t, key, result.Record.GiftKey)
}

// failingCommitStore runs the transaction body, then rolls it back as a failed commit would.
type failingCommitStore struct {
	repository.TransactionManager
}

func (s failingCommitStore) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return s.TransactionManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := fn(repos); err != nil {
			return err
		}

		return errors.New("commit failed: connection reset")
	})
}

func TestRedemptionService_FailedCommitIsNotCountedAsSuccess(t *testing.T) {
	eng := createTestEngine(t)
	shop, reward := eng.seedRedemptionShop(50)
	client := eng.seedCompleteClient()
	eng.store.SeedRegistration(&entity.Registration{ClientID: client.ID, ShopID: shop.ID, Points: 70, NbVisit: 3})

	metrics := mockSvc.NewMockMetrics(t)
	metrics.EXPECT().ObserveRedemption("points", "error").Return().Once()
	svc := eng.redemptions.(*redemptionService)
	svc.metrics = metrics
	svc.txManager = failingCommitStore{TransactionManager: eng.store}

	_, err := eng.redemptions.ConfirmRedemption(context.Background(), client.ID, shop.ID, usecase.RedemptionTarget{RewardID: &reward.ID})
	appErr, ok := errors.Cause(err).(domainerrors.AppError)
	require.True(t, ok, "expected an app error, got %v", err)
	assert.Equal(t, "PERSISTENCE_ERROR", appErr.ErrorCode())

	reg, err := eng.wallet.GetRegistration(context.Background(), client.ID, shop.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, reg.Points)
}
