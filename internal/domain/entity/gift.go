package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const giftKeyPrefix = "gift_partners_"

// GiftKey identifies the partner gift of a shop pair. It is the idempotency key
// that keeps a client from receiving more than one gift per partnership.
type GiftKey string

// NewGiftKey builds the key of the unordered pair (a, b); NewGiftKey(a, b) == NewGiftKey(b, a).
func NewGiftKey(a, b uuid.UUID) GiftKey {
	first, second := a.String(), b.String()
	if second < first {
		first, second = second, first
	}

	return GiftKey(giftKeyPrefix + first + "_" + second)
}

// String returns the key text.
func (k GiftKey) String() string {
	return string(k)
}

// Shops returns the ordered pair encoded in the key.
func (k GiftKey) Shops() (uuid.UUID, uuid.UUID, bool) {
	rest, found := strings.CutPrefix(string(k), giftKeyPrefix)
	if !found || len(rest) != 73 || rest[36] != '_' {
		return uuid.Nil, uuid.Nil, false
	}

	first, err := uuid.Parse(rest[:36])
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	second, err := uuid.Parse(rest[37:])
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}

	return first, second, true
}

// Gift is a one-shot, non-point reward granted through a partnership.
type Gift struct {
	ClientID      uuid.UUID  `json:"client_id"`
	Key           GiftKey    `json:"key"`
	ShopID        uuid.UUID  `json:"shop_id"`         // Issuing shop, where the gift is redeemable.
	PartnerShopID uuid.UUID  `json:"partner_shop_id"` // Shop whose scan triggered the grant.
	Reward        GiftReward `json:"reward"`
	Used          bool       `json:"used"`
	UsedAt        *time.Time `json:"used_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
