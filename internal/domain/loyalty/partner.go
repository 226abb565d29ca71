package loyalty

import (
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/google/uuid"
)

// PartnerGrant is what a partnership offers to a customer of the scanning shop.
type PartnerGrant struct {
	Key          entity.GiftKey
	ScanningShop uuid.UUID
	Counterpart  uuid.UUID          // Issuing shop of the gift.
	Offer        entity.PartnerSide // Counterpart's side of the link.
}

// PartnerGrantFor resolves the counterpart of scanningShop in link and the
// offer its customers receive there.
func PartnerGrantFor(link *entity.PartnerLink, scanningShop uuid.UUID) (PartnerGrant, error) {
	if link == nil || link.ShopA == uuid.Nil || link.ShopB == uuid.Nil || link.ShopA == link.ShopB {
		return PartnerGrant{}, domainerrors.ErrPartnerLinkInconsistent.WithDetails("invalid shop pair")
	}

	grant := PartnerGrant{
		Key:          entity.NewGiftKey(link.ShopA, link.ShopB),
		ScanningShop: scanningShop,
	}

	switch scanningShop {
	case link.ShopA:
		grant.Counterpart = link.ShopB
		grant.Offer = link.SideB
	case link.ShopB:
		grant.Counterpart = link.ShopA
		grant.Offer = link.SideA
	default:
		return PartnerGrant{}, domainerrors.ErrPartnerLinkInconsistent.WithDetails("scanning shop not in link " + link.ID.String())
	}

	return grant, nil
}

// NewGift builds the unused gift of a grant. The grant must offer a reward.
func (g PartnerGrant) NewGift(clientID uuid.UUID, now time.Time) *entity.Gift {
	var reward entity.GiftReward
	if g.Offer.RewardSelected != nil {
		reward = *g.Offer.RewardSelected
	}

	return &entity.Gift{
		ClientID:      clientID,
		Key:           g.Key,
		ShopID:        g.Counterpart,
		PartnerShopID: g.ScanningShop,
		Reward:        reward,
		CreatedAt:     now,
	}
}
