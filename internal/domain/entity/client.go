package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClientProfile is the demographic profile of an end user.
// Complete must be true before any redemption.
type ClientProfile struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	Phone      string     `json:"phone"`
	PostalCode string     `json:"postal_code"`
	Address    string     `json:"address"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
	Complete   bool       `json:"complete"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsProfileComplete reports whether every required profile field is filled in.
// The image is optional.
func IsProfileComplete(p *ClientProfile) bool {
	if p == nil {
		return false
	}

	for _, field := range []string{p.Name, p.Gender, p.Phone, p.PostalCode, p.Address} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}

	return p.Birthday != nil && !p.Birthday.IsZero()
}

// ClientDevice is a device registered by a client for push notifications.
type ClientDevice struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	DeviceID  string    `json:"device_id"` // Unique device identifier from the app.
	FCMToken  string    `json:"fcm_token"`
	Platform  string    `json:"platform"` // ios, android
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
