package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartnerStatus is the state of a partnership agreement.
type PartnerStatus string

const (
	PartnerStatusPending   PartnerStatus = "pending"
	PartnerStatusConfirmed PartnerStatus = "confirmed"
)

// PartnerLink is an agreement between two shops to cross-grant one-time gifts
// to each other's new customers.
type PartnerLink struct {
	ID        uuid.UUID     `json:"id"`
	ShopA     uuid.UUID     `json:"shop_a"`
	ShopB     uuid.UUID     `json:"shop_b"`
	Status    PartnerStatus `json:"status"`
	SideA     PartnerSide   `json:"side_a"` // Shop A's offer to shop B's customers.
	SideB     PartnerSide   `json:"side_b"` // Shop B's offer to shop A's customers.
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PartnerSide is one shop's setting in a partnership: what the other shop's
// customers receive, redeemable at this shop.
type PartnerSide struct {
	Active         bool        `json:"active"`
	RewardSelected *GiftReward `json:"reward_selected,omitempty"`
}

// Offers reports whether the side grants a gift.
func (s PartnerSide) Offers() bool {
	return s.Active && s.RewardSelected != nil && s.RewardSelected.Value != ""
}

// GiftReward describes what a gift is worth.
type GiftReward struct {
	Value       string `json:"value"`
	Description string `json:"description"`
}
