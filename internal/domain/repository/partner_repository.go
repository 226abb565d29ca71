package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerRepository reads partnership agreements.
type PartnerRepository interface {
	// FindConfirmedLinksByShop retrieves the confirmed links where the shop is either side.
	FindConfirmedLinksByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.PartnerLink, error)
}
