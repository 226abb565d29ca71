package postgres

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// giftRepository implements the repository.GiftRepository interface.
type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository is the constructor for giftRepository.
func NewGiftRepository(db *gorm.DB) repository.GiftRepository {
	return &giftRepository{
		db: db,
	}
}

func (repo *giftRepository) find(ctx context.Context, clientID uuid.UUID, key entity.GiftKey, lock bool) (*entity.Gift, error) {
	var giftM model.GiftModel

	query := repo.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.
		Where("client_id = ? AND gift_key = ?", clientID, key.String()).
		First(&giftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find gift")
	}

	return toGiftDomain(&giftM), nil
}

// FindGift retrieves a gift without locking it.
func (repo *giftRepository) FindGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	return repo.find(ctx, clientID, key, false)
}

// LockGift retrieves a gift with SELECT ... FOR UPDATE.
func (repo *giftRepository) LockGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	return repo.find(ctx, clientID, key, true)
}

// CreateGift inserts the gift unless (client_id, gift_key) already exists.
func (repo *giftRepository) CreateGift(ctx context.Context, gift *entity.Gift) error {
	giftM := fromGiftDomain(gift)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(giftM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateGift
		}

		return errors.Wrap(result.Error, "failed to create gift")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateGift
	}

	gift.CreatedAt = giftM.CreatedAt

	return nil
}

// MarkGiftUsed flips used from false to true in a single conditional update.
func (repo *giftRepository) MarkGiftUsed(ctx context.Context, clientID uuid.UUID, key entity.GiftKey, usedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GiftModel{}).
		Where("client_id = ? AND gift_key = ? AND used = ?", clientID, key.String(), false).
		Updates(map[string]any{"used": true, "used_at": usedAt})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark gift used")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindGift(ctx, clientID, key); err != nil {
		return err
	}

	return repository.ErrGiftAlreadyUsed
}

// FindGiftsByClient retrieves all gifts of a client, newest first.
func (repo *giftRepository) FindGiftsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Gift, error) {
	var giftModels []*model.GiftModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&giftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find gifts by client")
	}

	gifts := make([]*entity.Gift, 0, len(giftModels))
	for _, giftM := range giftModels {
		gifts = append(gifts, toGiftDomain(giftM))
	}

	return gifts, nil
}
