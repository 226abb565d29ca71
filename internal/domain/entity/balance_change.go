package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeReason tells which operation produced a BalanceChange.
type ChangeReason string

const (
	ChangeReasonScan       ChangeReason = "scan"
	ChangeReasonRedemption ChangeReason = "redemption"
	ChangeReasonGift       ChangeReason = "gift"
)

// BalanceChange is pushed to subscribers after a registration or gift changed.
type BalanceChange struct {
	ClientID uuid.UUID    `json:"client_id"`
	ShopID   uuid.UUID    `json:"shop_id"`
	Points   int          `json:"points"`
	NbVisit  int          `json:"nb_visit"`
	Reason   ChangeReason `json:"reason"`
	GiftKey  GiftKey      `json:"gift_key,omitempty"`
	At       time.Time    `json:"at"`
}
