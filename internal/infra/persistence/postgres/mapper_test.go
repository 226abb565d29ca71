package postgres

import (
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToShopDomain_CollectsTags(t *testing.T) {
	shopID := uuid.New()
	shopM := &model.ShopModel{
		ID:                   shopID,
		Name:                 "Bakery",
		NewClientPoints:      10,
		StandardClientPoints: 5,
		VIPClientPoints:      8,
		VIPVisitThreshold:    20,
		VIPActive:            true,
		CooldownSeconds:      900,
		Tags:                 []model.ShopTagModel{{TagID: "tag-1", ShopID: shopID}, {TagID: "tag-2", ShopID: shopID}},
	}

	shop := toShopDomain(shopM)

	require.NotNil(t, shop)
	assert.Equal(t, []string{"tag-1", "tag-2"}, shop.Rules.NFCTagIDs)
	assert.Equal(t, 15*time.Minute, shop.Rules.Cooldown())
	assert.Equal(t, 8, shop.Rules.PointsFor(entity.TierVIP))
	assert.Nil(t, toShopDomain(nil))
}

func TestToPartnerLinkDomain_Sides(t *testing.T) {
	value := "Free coffee"
	linkM := &model.PartnerLinkModel{
		ID:               uuid.New(),
		ShopA:            uuid.New(),
		ShopB:            uuid.New(),
		Status:           "confirmed",
		SideAActive:      true,
		SideARewardValue: &value,
		SideBActive:      true,
	}

	link := toPartnerLinkDomain(linkM)

	assert.Equal(t, entity.PartnerStatusConfirmed, link.Status)
	assert.True(t, link.SideA.Offers())
	assert.Equal(t, "Free coffee", link.SideA.RewardSelected.Value)
	assert.Empty(t, link.SideA.RewardSelected.Description)
	assert.False(t, link.SideB.Offers())
	assert.Nil(t, link.SideB.RewardSelected)
}

func TestRegistrationMapping_KeepsSnapshot(t *testing.T) {
	birthday := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	reg := &entity.Registration{
		ClientID:  uuid.New(),
		ShopID:    uuid.New(),
		Points:    42,
		NbVisit:   3,
		LastVisit: time.Now().UTC(),
		Snapshot: entity.DemographicSnapshot{
			Name:     "Ana",
			Birthday: &birthday,
		},
		NotificationsActive: true,
	}

	got := toRegistrationDomain(fromRegistrationDomain(reg))

	assert.Equal(t, reg, got)
}

func TestGiftMapping_KeepsKey(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	gift := &entity.Gift{
		ClientID:      uuid.New(),
		Key:           entity.NewGiftKey(a, b),
		ShopID:        a,
		PartnerShopID: b,
		Reward:        entity.GiftReward{Value: "Croissant"},
	}

	giftM := fromGiftDomain(gift)

	assert.Equal(t, gift.Key.String(), giftM.GiftKey)
	assert.Equal(t, gift, toGiftDomain(giftM))
}
