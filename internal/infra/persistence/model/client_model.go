package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	Name       string     `gorm:"type:varchar(100)"`
	Gender     string     `gorm:"type:varchar(20)"`
	Phone      string     `gorm:"type:varchar(50)"`
	PostalCode string     `gorm:"type:varchar(20)"`
	Address    string     `gorm:"type:varchar(255)"`
	Birthday   *time.Time `gorm:"type:date"`
	ImageURL   string     `gorm:"type:varchar(512)"`
	Complete   bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// ClientDeviceModel mirrors the 'client_devices' table.
// A client registers each physical device once.
type ClientDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_client_devices_client_device"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_client_devices_client_device"`
	FCMToken  string    `gorm:"column:fcm_token;type:varchar(255);not null;index"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientDeviceModel) TableName() string {
	return "client_devices"
}
