package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client profile does not exist.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines client profile and push device persistence.
type ClientRepository interface {
	// FindClientByID retrieves a client profile.
	FindClientByID(ctx context.Context, id uuid.UUID) (*entity.ClientProfile, error)

	// UpsertClient creates or replaces a client profile.
	UpsertClient(ctx context.Context, client *entity.ClientProfile) error

	// FindActiveDevicesByClient retrieves the devices that still accept notifications.
	FindActiveDevicesByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.ClientDevice, error)

	// UpsertDevice creates a device, or refreshes the token of the client's device with the same DeviceID.
	UpsertDevice(ctx context.Context, device *entity.ClientDevice) error

	// DeactivateDevicesByToken marks every device holding one of the tokens as inactive.
	DeactivateDevicesByToken(ctx context.Context, tokens []string) error
}
