package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration is the loyalty membership of a client at a shop.
type Registration struct {
	ClientID            uuid.UUID           `json:"client_id"`
	ShopID              uuid.UUID           `json:"shop_id"`
	Points              int                 `json:"points"`
	NbVisit             int                 `json:"nb_visit"`
	LastVisit           time.Time           `json:"last_visit"`
	Snapshot            DemographicSnapshot `json:"snapshot"`
	NotificationsActive bool                `json:"notifications_active"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// DemographicSnapshot is the copy of the client profile taken at the last ledger write.
type DemographicSnapshot struct {
	Name       string     `json:"name"`
	Gender     string     `json:"gender"`
	Phone      string     `json:"phone"`
	PostalCode string     `json:"postal_code"`
	Address    string     `json:"address"`
	Birthday   *time.Time `json:"birthday,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
}

// SnapshotOf copies the demographic fields of a profile.
func SnapshotOf(p *ClientProfile) DemographicSnapshot {
	if p == nil {
		return DemographicSnapshot{}
	}

	return DemographicSnapshot{
		Name:       p.Name,
		Gender:     p.Gender,
		Phone:      p.Phone,
		PostalCode: p.PostalCode,
		Address:    p.Address,
		Birthday:   p.Birthday,
		ImageURL:   p.ImageURL,
	}
}
