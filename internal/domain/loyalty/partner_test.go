package loyalty

import (
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerGrantFor(t *testing.T) {
	shopA, shopB := uuid.New(), uuid.New()
	link := &entity.PartnerLink{
		ID:     uuid.New(),
		ShopA:  shopA,
		ShopB:  shopB,
		Status: entity.PartnerStatusConfirmed,
		SideA:  entity.PartnerSide{Active: true, RewardSelected: &entity.GiftReward{Value: "coffee"}},
		SideB:  entity.PartnerSide{Active: false},
	}

	fromB, err := PartnerGrantFor(link, shopB)
	require.NoError(t, err)
	assert.Equal(t, shopA, fromB.Counterpart)
	assert.True(t, fromB.Offer.Offers())

	fromA, err := PartnerGrantFor(link, shopA)
	require.NoError(t, err)
	assert.Equal(t, shopB, fromA.Counterpart)
	assert.False(t, fromA.Offer.Offers())

	assert.Equal(t, fromA.Key, fromB.Key)
}

func TestPartnerGrantFor_Inconsistent(t *testing.T) {
	shop := uuid.New()

	tests := []struct {
		name string
		link *entity.PartnerLink
	}{
		{"nil link", nil},
		{"same shop", &entity.PartnerLink{ShopA: shop, ShopB: shop}},
		{"nil id", &entity.PartnerLink{ShopA: shop}},
		{"not a member", &entity.PartnerLink{ShopA: uuid.New(), ShopB: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartnerGrantFor(tt.link, shop)
			assert.ErrorIs(t, err, domainerrors.ErrPartnerLinkInconsistent)
		})
	}
}

func TestPartnerGrant_NewGift(t *testing.T) {
	shopA, shopB, clientID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()
	grant, err := PartnerGrantFor(&entity.PartnerLink{
		ShopA: shopA,
		ShopB: shopB,
		SideA: entity.PartnerSide{Active: true, RewardSelected: &entity.GiftReward{Value: "tea", Description: "free tea"}},
	}, shopB)
	require.NoError(t, err)

	gift := grant.NewGift(clientID, now)

	assert.Equal(t, clientID, gift.ClientID)
	assert.Equal(t, entity.NewGiftKey(shopA, shopB), gift.Key)
	assert.Equal(t, shopA, gift.ShopID)
	assert.Equal(t, shopB, gift.PartnerShopID)
	assert.Equal(t, "tea", gift.Reward.Value)
	assert.False(t, gift.Used)
}
