package entity

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionKind tells what a redemption consumed.
type RedemptionKind string

const (
	RedemptionKindPoints RedemptionKind = "points"
	RedemptionKindGift   RedemptionKind = "gift"
)

// RedemptionRecord is an append-only history entry of a consumed reward or gift.
type RedemptionRecord struct {
	ID           uuid.UUID      `json:"id"`
	ClientID     uuid.UUID      `json:"client_id"`
	ShopID       uuid.UUID      `json:"shop_id"`
	Kind         RedemptionKind `json:"kind"`
	RewardID     *uuid.UUID     `json:"reward_id,omitempty"`
	GiftKey      GiftKey        `json:"gift_key,omitempty"`
	Value        string         `json:"value"`
	Description  string         `json:"description"`
	Cost         int            `json:"cost"`
	PointsBefore int            `json:"points_before"`
	PointsAfter  int            `json:"points_after"`
	CreatedAt    time.Time      `json:"created_at"`
}
