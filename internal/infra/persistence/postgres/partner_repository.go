package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{
		db: db,
	}
}

// FindConfirmedLinksByShop retrieves confirmed links on either side of the shop.
func (repo *partnerRepository) FindConfirmedLinksByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.PartnerLink, error) {
	var linkModels []*model.PartnerLinkModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.PartnerStatusConfirmed)).
		Where(repo.db.Where("shop_a = ?", shopID).Or("shop_b = ?", shopID)).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find partner links")
	}

	links := make([]*entity.PartnerLink, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toPartnerLinkDomain(linkM))
	}

	return links, nil
}
