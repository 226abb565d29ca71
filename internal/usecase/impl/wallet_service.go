package impl

import (
	"context"
	"time"

	"loyalty/config"
	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// walletService implements the WalletUsecase interface.
type walletService struct {
	repos            repository.RepositoryFactory
	feed             service.ChangeFeed
	operationTimeout time.Duration
}

// NewWalletService creates a new wallet query service instance
func NewWalletService(repos repository.RepositoryFactory, feed service.ChangeFeed, cfg *config.Config) usecase.WalletUsecase {
	return &walletService{
		repos:            repos,
		feed:             feed,
		operationTimeout: cfg.Loyalty.OperationTimeout,
	}
}

func (s *walletService) ListRegistrations(ctx context.Context, clientID uuid.UUID) ([]*entity.Registration, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	regs, err := s.repos.NewRegistrationRepository().FindRegistrationsByClient(ctx, clientID)
	if err != nil {
		return nil, storeError(err, "failed to list registrations")
	}

	return regs, nil
}

func (s *walletService) GetRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	reg, err := s.repos.NewRegistrationRepository().FindRegistration(ctx, clientID, shopID)
	if err != nil {
		return nil, storeError(err, "failed to get registration")
	}

	return reg, nil
}

// ListRewards returns the reward ladder of an existing shop.
func (s *walletService) ListRewards(ctx context.Context, shopID uuid.UUID) (entity.RewardLadder, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	shopRepo := s.repos.NewShopRepository()
	if _, err := shopRepo.FindShopByID(ctx, shopID); err != nil {
		return nil, storeError(err, "failed to find shop")
	}

	rewards, err := shopRepo.FindRewardsByShop(ctx, shopID)
	if err != nil {
		return nil, storeError(err, "failed to list rewards")
	}

	return entity.NewRewardLadder(rewards), nil
}

func (s *walletService) ListGifts(ctx context.Context, clientID uuid.UUID) ([]*entity.Gift, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	gifts, err := s.repos.NewGiftRepository().FindGiftsByClient(ctx, clientID)
	if err != nil {
		return nil, storeError(err, "failed to list gifts")
	}

	return gifts, nil
}

func (s *walletService) ListRedemptions(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	limit, offset = normalizePage(limit, offset)
	records, err := s.repos.NewRedemptionRepository().FindRedemptionsByClient(ctx, clientID, limit, offset)
	if err != nil {
		return nil, storeError(err, "failed to list redemptions")
	}

	return records, nil
}

func (s *walletService) ListVisits(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error) {
	ctx, cancel := withOperationTimeout(ctx, s.operationTimeout)
	defer cancel()

	limit, offset = normalizePage(limit, offset)
	visits, err := s.repos.NewVisitRepository().FindVisitsByClient(ctx, clientID, limit, offset)
	if err != nil {
		return nil, storeError(err, "failed to list visits")
	}

	return visits, nil
}

// Subscribe is bound to ctx only, never to the operation deadline.
func (s *walletService) Subscribe(ctx context.Context, clientID uuid.UUID) (service.Subscription, error) {
	sub, err := s.feed.Subscribe(ctx, clientID)
	if err != nil {
		return nil, storeError(err, "failed to subscribe to balance changes")
	}

	return sub, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	return min(limit, maxPageSize), max(offset, 0)
}
