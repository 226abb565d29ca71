package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel mirrors the 'registrations' table, keyed by (client_id, shop_id).
type RegistrationModel struct {
	ClientID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	ShopID              uuid.UUID     `gorm:"type:uuid;primaryKey;index"`
	Points              int           `gorm:"not null;default:0;check:chk_registrations_points_non_negative,points >= 0"`
	NbVisit             int           `gorm:"not null;default:0"`
	LastVisit           time.Time     `gorm:"not null"`
	Snapshot            SnapshotModel `gorm:"embedded;embeddedPrefix:snapshot_"`
	NotificationsActive bool          `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}

// SnapshotModel is the demographic copy embedded in a registration row.
type SnapshotModel struct {
	Name       string     `gorm:"type:varchar(100)"`
	Gender     string     `gorm:"type:varchar(20)"`
	Phone      string     `gorm:"type:varchar(50)"`
	PostalCode string     `gorm:"type:varchar(20)"`
	Address    string     `gorm:"type:varchar(255)"`
	Birthday   *time.Time `gorm:"type:date"`
	ImageURL   string     `gorm:"type:varchar(512)"`
}

// PartnerLinkModel mirrors the 'partner_links' table.
type PartnerLinkModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopA                  uuid.UUID `gorm:"column:shop_a;type:uuid;not null;index"`
	ShopB                  uuid.UUID `gorm:"column:shop_b;type:uuid;not null;index"`
	Status                 string    `gorm:"type:varchar(20);not null;default:'pending'"`
	SideAActive            bool      `gorm:"column:side_a_active;not null;default:false"`
	SideARewardValue       *string   `gorm:"column:side_a_reward_value;type:varchar(255)"`
	SideARewardDescription *string   `gorm:"column:side_a_reward_description;type:text"`
	SideBActive            bool      `gorm:"column:side_b_active;not null;default:false"`
	SideBRewardValue       *string   `gorm:"column:side_b_reward_value;type:varchar(255)"`
	SideBRewardDescription *string   `gorm:"column:side_b_reward_description;type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerLinkModel) TableName() string {
	return "partner_links"
}

// GiftModel mirrors the 'gifts' table. The primary key (client_id, gift_key)
// enforces one gift per client and partnership.
type GiftModel struct {
	ClientID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GiftKey           string    `gorm:"type:varchar(120);primaryKey"`
	ShopID            uuid.UUID `gorm:"type:uuid;not null;index"`
	PartnerShopID     uuid.UUID `gorm:"type:uuid;not null"`
	RewardValue       string    `gorm:"type:varchar(255);not null"`
	RewardDescription string    `gorm:"type:text"`
	Used              bool      `gorm:"not null;default:false"`
	UsedAt            *time.Time
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GiftModel) TableName() string {
	return "gifts"
}
