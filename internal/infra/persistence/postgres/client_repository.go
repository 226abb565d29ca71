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

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// FindClientByID retrieves a client profile.
func (repo *clientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.ClientProfile, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	return toClientDomain(&clientM), nil
}

// UpsertClient inserts the profile or replaces every mutable column.
func (repo *clientRepository) UpsertClient(ctx context.Context, client *entity.ClientProfile) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "gender", "phone", "postal_code", "address",
				"birthday", "image_url", "complete", "updated_at",
			}),
		}).
		Create(clientM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert client")
	}

	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

// FindActiveDevicesByClient retrieves the active devices of a client.
func (repo *clientRepository) FindActiveDevicesByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.ClientDevice, error) {
	var deviceModels []*model.ClientDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("client_id = ? AND is_active = ?", clientID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by client")
	}

	devices := make([]*entity.ClientDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpsertDevice registers a device or refreshes its token and reactivates it.
func (repo *clientRepository) UpsertDevice(ctx context.Context, device *entity.ClientDevice) error {
	deviceM := fromDeviceDomain(device)
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
		}).
		Create(deviceM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// DeactivateDevicesByToken marks every device holding one of the tokens as inactive.
func (repo *clientRepository) DeactivateDevicesByToken(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ClientDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Update("is_active", false).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}
