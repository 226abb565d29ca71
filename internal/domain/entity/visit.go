package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitRecord is an analytics history entry appended after each recorded scan.
type VisitRecord struct {
	ID            uuid.UUID `json:"id"`
	ClientID      uuid.UUID `json:"client_id"`
	ShopID        uuid.UUID `json:"shop_id"`
	Tier          Tier      `json:"tier"`
	AwardedPoints int       `json:"awarded_points"`
	BalanceAfter  int       `json:"balance_after"`
	VisitedAt     time.Time `json:"visited_at"`
}
