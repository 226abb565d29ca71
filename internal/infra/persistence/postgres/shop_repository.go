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

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// FindShopByID retrieves a shop with its tag set.
func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	return toShopDomain(&shopM), nil
}

// FindShopByTagID resolves the owner of a tag through the shop_tags table.
func (repo *shopRepository) FindShopByTagID(ctx context.Context, tagID string) (*entity.Shop, error) {
	var tagM model.ShopTagModel

	if err := repo.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop tag")
	}

	return repo.FindShopByID(ctx, tagM.ShopID)
}

// FindRewardsByShop retrieves the reward ladder of a shop.
func (repo *shopRepository) FindRewardsByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.RewardDefinition, error) {
	var rewardModels []*model.RewardDefinitionModel

	if err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("points ASC").
		Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rewards by shop")
	}

	rewards := make([]*entity.RewardDefinition, 0, len(rewardModels))
	for _, rewardM := range rewardModels {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// FindRewardByID retrieves one reward definition scoped to its shop.
func (repo *shopRepository) FindRewardByID(ctx context.Context, shopID, rewardID uuid.UUID) (*entity.RewardDefinition, error) {
	var rewardM model.RewardDefinitionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND shop_id = ?", rewardID, shopID).
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by ID")
	}

	return toRewardDomain(&rewardM), nil
}
