package model

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionModel mirrors the append-only 'redemptions' table.
type RedemptionModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_redemptions_client_created"`
	ShopID       uuid.UUID  `gorm:"type:uuid;not null"`
	Kind         string     `gorm:"type:varchar(20);not null"`
	RewardID     *uuid.UUID `gorm:"type:uuid"`
	GiftKey      string     `gorm:"type:varchar(120)"`
	Value        string     `gorm:"type:varchar(255)"`
	Description  string     `gorm:"type:text"`
	Cost         int        `gorm:"not null;default:0"`
	PointsBefore int        `gorm:"not null;default:0"`
	PointsAfter  int        `gorm:"not null;default:0"`
	CreatedAt    time.Time  `gorm:"index:idx_redemptions_client_created"`
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}

// VisitModel mirrors the append-only 'visits' table.
type VisitModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	ClientID      uuid.UUID `gorm:"type:uuid;not null;index:idx_visits_client_visited"`
	ShopID        uuid.UUID `gorm:"type:uuid;not null"`
	Tier          string    `gorm:"type:varchar(20);not null"`
	AwardedPoints int       `gorm:"not null;default:0"`
	BalanceAfter  int       `gorm:"not null;default:0"`
	VisitedAt     time.Time `gorm:"not null;index:idx_visits_client_visited"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
