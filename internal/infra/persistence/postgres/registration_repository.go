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

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

func (repo *registrationRepository) find(ctx context.Context, clientID, shopID uuid.UUID, lock bool) (*entity.Registration, error) {
	var regM model.RegistrationModel

	query := repo.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.
		Where("client_id = ? AND shop_id = ?", clientID, shopID).
		First(&regM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	return toRegistrationDomain(&regM), nil
}

// FindRegistration retrieves a registration without locking it.
func (repo *registrationRepository) FindRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	return repo.find(ctx, clientID, shopID, false)
}

// LockRegistration retrieves a registration with SELECT ... FOR UPDATE.
func (repo *registrationRepository) LockRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	return repo.find(ctx, clientID, shopID, true)
}

// CreateRegistration inserts a new card. A primary key collision means a
// concurrent first scan committed first.
func (repo *registrationRepository) CreateRegistration(ctx context.Context, reg *entity.Registration) error {
	regM := fromRegistrationDomain(reg)

	if err := repo.db.WithContext(ctx).Create(regM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrConcurrentModification
		}

		return errors.Wrap(err, "failed to create registration")
	}

	reg.CreatedAt = regM.CreatedAt
	reg.UpdatedAt = regM.UpdatedAt

	return nil
}

// UpdateRegistration overwrites the mutable columns of a registration.
func (repo *registrationRepository) UpdateRegistration(ctx context.Context, reg *entity.Registration) error {
	regM := fromRegistrationDomain(reg)

	result := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("client_id = ? AND shop_id = ?", reg.ClientID, reg.ShopID).
		Select("points", "nb_visit", "last_visit", "snapshot_name", "snapshot_gender",
			"snapshot_phone", "snapshot_postal_code", "snapshot_address", "snapshot_birthday",
			"snapshot_image_url", "notifications_active", "updated_at").
		Updates(regM)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "registration points would become negative")
		}

		return errors.Wrap(result.Error, "failed to update registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// FindRegistrationsByClient retrieves all cards of a client.
func (repo *registrationRepository) FindRegistrationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Registration, error) {
	var regModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("last_visit DESC").
		Find(&regModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by client")
	}

	regs := make([]*entity.Registration, 0, len(regModels))
	for _, regM := range regModels {
		regs = append(regs, toRegistrationDomain(regM))
	}

	return regs, nil
}

// ExistsRegistration reports whether the client has a card at the shop.
func (repo *registrationRepository) ExistsRegistration(ctx context.Context, clientID, shopID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RegistrationModel{}).
		Where("client_id = ? AND shop_id = ?", clientID, shopID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check registration")
	}

	return count > 0, nil
}
