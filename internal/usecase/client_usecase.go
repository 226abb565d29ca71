package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput carries the editable profile fields.
type ProfileInput struct {
	Name       string     `json:"name" validate:"max=100"`
	Gender     string     `json:"gender" validate:"max=20"`
	Phone      string     `json:"phone" validate:"max=50"`
	PostalCode string     `json:"postal_code" validate:"max=20"`
	Address    string     `json:"address" validate:"max=255"`
	Birthday   *time.Time `json:"birthday"`
	ImageURL   string     `json:"image_url" validate:"omitempty,url"`
}

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// ClientUsecase manages client profiles and push devices.
type ClientUsecase interface {
	GetProfile(ctx context.Context, clientID uuid.UUID) (*entity.ClientProfile, error)

	// UpdateProfile replaces the profile fields and recomputes completeness.
	UpdateProfile(ctx context.Context, clientID uuid.UUID, input *ProfileInput) (*entity.ClientProfile, error)

	// RegisterDevice registers a new device or refreshes the token of an existing one
	RegisterDevice(ctx context.Context, clientID uuid.UUID, info *DeviceInfo) (*entity.ClientDevice, error)
}
