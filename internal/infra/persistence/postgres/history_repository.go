package postgres

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// redemptionRepository implements the repository.RedemptionRepository interface.
type redemptionRepository struct {
	db *gorm.DB
}

// NewRedemptionRepository is the constructor for redemptionRepository.
func NewRedemptionRepository(db *gorm.DB) repository.RedemptionRepository {
	return &redemptionRepository{
		db: db,
	}
}

// CreateRedemption appends a redemption record.
func (repo *redemptionRepository) CreateRedemption(ctx context.Context, record *entity.RedemptionRecord) error {
	recordM := fromRedemptionDomain(record)
	if recordM.ID == uuid.Nil {
		recordM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to create redemption")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// FindRedemptionsByClient pages through a client's redemptions, newest first.
func (repo *redemptionRepository) FindRedemptionsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error) {
	var recordModels []*model.RedemptionModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find redemptions by client")
	}

	records := make([]*entity.RedemptionRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRedemptionDomain(recordM))
	}

	return records, nil
}

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// CreateVisit appends a visit record. Redelivered events carry the same ID
// and are dropped by the conflict clause.
func (repo *visitRepository) CreateVisit(ctx context.Context, record *entity.VisitRecord) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fromVisitDomain(record)).Error; err != nil {
		return errors.Wrap(err, "failed to create visit")
	}

	return nil
}

// FindVisitsByClient pages through a client's visits, newest first.
func (repo *visitRepository) FindVisitsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("visited_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by client")
	}

	visits := make([]*entity.VisitRecord, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}
