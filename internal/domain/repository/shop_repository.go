// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when no shop matches the lookup.
	ErrShopNotFound = errors.New("shop not found")
	// ErrRewardNotFound is returned when a reward definition does not exist for the shop.
	ErrRewardNotFound = errors.New("reward not found")
)

// ShopRepository reads shops, their rule configuration and reward ladders.
// The engine never writes shop data.
type ShopRepository interface {
	// FindShopByID retrieves a shop by its unique ID.
	FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindShopByTagID retrieves the shop owning an NFC tag.
	FindShopByTagID(ctx context.Context, tagID string) (*entity.Shop, error)

	// FindRewardsByShop retrieves the reward definitions of a shop, ascending by points.
	FindRewardsByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.RewardDefinition, error)

	// FindRewardByID retrieves one reward definition of a shop.
	FindRewardByID(ctx context.Context, shopID, rewardID uuid.UUID) (*entity.RewardDefinition, error)
}
