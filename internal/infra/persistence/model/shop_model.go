package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. The rule configuration is stored inline.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ShopModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	NewClientPoints      int       `gorm:"not null;default:0"`
	StandardClientPoints int       `gorm:"not null;default:0"`
	VIPClientPoints      int       `gorm:"column:vip_client_points;not null;default:0"`
	VIPVisitThreshold    int       `gorm:"column:vip_visit_threshold;not null;default:0"`
	VIPActive            bool      `gorm:"column:vip_active;not null;default:false"`
	CooldownSeconds      int       `gorm:"not null;default:0"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Tags []ShopTagModel `gorm:"foreignKey:ShopID"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopTagModel mirrors the 'shop_tags' table. A tag belongs to exactly one shop.
type ShopTagModel struct {
	TagID  string    `gorm:"type:varchar(255);primaryKey"`
	ShopID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ShopTagModel) TableName() string {
	return "shop_tags"
}

// RewardDefinitionModel mirrors the 'reward_definitions' table.
type RewardDefinitionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Points      int       `gorm:"not null"`
	Value       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardDefinitionModel) TableName() string {
	return "reward_definitions"
}
