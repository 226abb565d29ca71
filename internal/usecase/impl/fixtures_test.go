package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/feed"
	"loyalty/internal/infra/persistence/memory"
	mockSvc "loyalty/internal/mocks/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// testClock is a settable clock shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

// engineFixtures wires every service on the in-memory store.
type engineFixtures struct {
	store       *memory.Store
	feed        service.ChangeFeed
	publisher   *mockSvc.MockEventPublisher
	notifier    *mockSvc.MockNotificationService
	metrics     *mockSvc.MockMetrics
	clock       *testClock
	tags        usecase.TagUsecase
	partners    usecase.PartnerUsecase
	scans       *scanService
	redemptions usecase.RedemptionUsecase
	wallet      usecase.WalletUsecase
	clients     usecase.ClientUsecase
}

func testConfig() *config.Config {
	return &config.Config{
		Loyalty: config.LoyaltyConfig{
			OperationTimeout:   5 * time.Second,
			PropagationTimeout: 5 * time.Second,
			PropagationWorkers: 4,
			ScanRetries:        3,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestEngine(t *testing.T) *engineFixtures {
	t.Helper()

	cfg := testConfig()
	logger := testLogger()
	store := memory.NewStore()
	changeFeed := feed.NewMemoryFeed(logger)
	clock := &testClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishVisitEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	notifier := mockSvc.NewMockNotificationService(t)
	notifier.EXPECT().
		SendBatchNotification(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
			return len(tokens), 0, nil, nil
		}).Maybe()

	metrics := mockSvc.NewMockMetrics(t)
	metrics.EXPECT().ObserveScan(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().ObserveRedemption(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().ObservePartnerGift(mock.Anything).Return().Maybe()

	return assembleEngine(store, changeFeed, publisher, notifier, metrics, clock, cfg, logger)
}

func assembleEngine(
	store *memory.Store,
	changeFeed service.ChangeFeed,
	publisher *mockSvc.MockEventPublisher,
	notifier *mockSvc.MockNotificationService,
	metrics *mockSvc.MockMetrics,
	clock *testClock,
	cfg *config.Config,
	logger *slog.Logger,
) *engineFixtures {
	tags := NewTagService(store, logger)

	partners := NewPartnerService(PartnerServiceParams{
		TxManager: store,
		Repos:     store,
		Notifier:  notifier,
		Feed:      changeFeed,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	})
	partners.(*partnerService).now = clock.Now

	scans := NewScanService(ScanServiceParams{
		TxManager: store,
		Tags:      tags,
		Partners:  partners,
		Publisher: publisher,
		Feed:      changeFeed,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	}).(*scanService)
	scans.now = clock.Now

	redemptions := NewRedemptionService(RedemptionServiceParams{
		TxManager: store,
		Feed:      changeFeed,
		Metrics:   metrics,
		Config:    cfg,
		Logger:    logger,
	})
	redemptions.(*redemptionService).now = clock.Now

	return &engineFixtures{
		store:       store,
		feed:        changeFeed,
		publisher:   publisher,
		notifier:    notifier,
		metrics:     metrics,
		clock:       clock,
		tags:        tags,
		partners:    partners,
		scans:       scans,
		redemptions: redemptions,
		wallet:      NewWalletService(store, changeFeed, cfg),
		clients:     NewClientService(store, store, logger),
	}
}

// scan records a visit and waits for its partner propagation.
func (eng *engineFixtures) scan(t *testing.T, clientID, shopID uuid.UUID) (*usecase.ScanResult, error) {
	t.Helper()

	result, err := eng.scans.RecordScan(context.Background(), clientID, shopID)
	eng.scans.propagation.Wait()

	return result, err
}

// seedShop stores a shop with the default test rules and a ladder of the given thresholds.
func (eng *engineFixtures) seedShop(tagID string, thresholds ...int) *entity.Shop {
	shop := &entity.Shop{
		ID:   uuid.New(),
		Name: "Shop " + tagID,
		Rules: entity.ShopRuleConfig{
			NewClientPoints:      10,
			StandardClientPoints: 5,
			VIPClientPoints:      8,
			VIPVisitThreshold:    3,
			VIPActive:            true,
			CooldownSeconds:      1800,
			NFCTagIDs:            []string{tagID},
		},
	}

	rewards := make([]*entity.RewardDefinition, 0, len(thresholds))
	for _, points := range thresholds {
		rewards = append(rewards, &entity.RewardDefinition{
			ID:     uuid.New(),
			ShopID: shop.ID,
			Points: points,
			Value:  "Reward",
		})
	}
	eng.store.SeedShop(shop, rewards...)

	return shop
}

func (eng *engineFixtures) seedCompleteClient() *entity.ClientProfile {
	birthday := time.Date(1992, 5, 17, 0, 0, 0, 0, time.UTC)
	client := &entity.ClientProfile{
		ID:         uuid.New(),
		Name:       "Jo Martin",
		Gender:     "other",
		Phone:      "+33600000000",
		PostalCode: "75011",
		Address:    "1 rue Oberkampf",
		Birthday:   &birthday,
		Complete:   true,
	}
	eng.store.SeedClient(client)

	return client
}

func (eng *engineFixtures) seedLink(a, b uuid.UUID, sideA, sideB entity.PartnerSide) *entity.PartnerLink {
	link := &entity.PartnerLink{
		ID:     uuid.New(),
		ShopA:  a,
		ShopB:  b,
		Status: entity.PartnerStatusConfirmed,
		SideA:  sideA,
		SideB:  sideB,
	}
	eng.store.SeedPartnerLink(link)

	return link
}

func offering(value string) entity.PartnerSide {
	return entity.PartnerSide{Active: true, RewardSelected: &entity.GiftReward{Value: value}}
}
