package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/service"

	"github.com/google/uuid"
)

// WalletUsecase answers the read side of a client's loyalty cards.
type WalletUsecase interface {
	ListRegistrations(ctx context.Context, clientID uuid.UUID) ([]*entity.Registration, error)
	GetRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error)
	ListRewards(ctx context.Context, shopID uuid.UUID) (entity.RewardLadder, error)
	ListGifts(ctx context.Context, clientID uuid.UUID) ([]*entity.Gift, error)
	ListRedemptions(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error)
	ListVisits(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error)

	// Subscribe opens a balance change subscription; the caller must close it.
	Subscribe(ctx context.Context, clientID uuid.UUID) (service.Subscription, error)
}
