package postgres

import (
	"loyalty/internal/domain/entity"
	"loyalty/internal/infra/persistence/model"
)

func toShopDomain(shopM *model.ShopModel) *entity.Shop {
	if shopM == nil {
		return nil
	}

	tags := make([]string, 0, len(shopM.Tags))
	for _, tag := range shopM.Tags {
		tags = append(tags, tag.TagID)
	}

	return &entity.Shop{
		ID:   shopM.ID,
		Name: shopM.Name,
		Rules: entity.ShopRuleConfig{
			NewClientPoints:      shopM.NewClientPoints,
			StandardClientPoints: shopM.StandardClientPoints,
			VIPClientPoints:      shopM.VIPClientPoints,
			VIPVisitThreshold:    shopM.VIPVisitThreshold,
			VIPActive:            shopM.VIPActive,
			CooldownSeconds:      shopM.CooldownSeconds,
			NFCTagIDs:            tags,
		},
		CreatedAt: shopM.CreatedAt,
		UpdatedAt: shopM.UpdatedAt,
	}
}

func toRewardDomain(rewardM *model.RewardDefinitionModel) *entity.RewardDefinition {
	if rewardM == nil {
		return nil
	}

	return &entity.RewardDefinition{
		ID:          rewardM.ID,
		ShopID:      rewardM.ShopID,
		Points:      rewardM.Points,
		Value:       rewardM.Value,
		Description: rewardM.Description,
		CreatedAt:   rewardM.CreatedAt,
	}
}

func toClientDomain(clientM *model.ClientModel) *entity.ClientProfile {
	if clientM == nil {
		return nil
	}

	return &entity.ClientProfile{
		ID:         clientM.ID,
		Name:       clientM.Name,
		Gender:     clientM.Gender,
		Phone:      clientM.Phone,
		PostalCode: clientM.PostalCode,
		Address:    clientM.Address,
		Birthday:   clientM.Birthday,
		ImageURL:   clientM.ImageURL,
		Complete:   clientM.Complete,
		CreatedAt:  clientM.CreatedAt,
		UpdatedAt:  clientM.UpdatedAt,
	}
}

func fromClientDomain(client *entity.ClientProfile) *model.ClientModel {
	if client == nil {
		return nil
	}

	return &model.ClientModel{
		ID:         client.ID,
		Name:       client.Name,
		Gender:     client.Gender,
		Phone:      client.Phone,
		PostalCode: client.PostalCode,
		Address:    client.Address,
		Birthday:   client.Birthday,
		ImageURL:   client.ImageURL,
		Complete:   client.Complete,
		CreatedAt:  client.CreatedAt,
		UpdatedAt:  client.UpdatedAt,
	}
}

func toDeviceDomain(deviceM *model.ClientDeviceModel) *entity.ClientDevice {
	if deviceM == nil {
		return nil
	}

	return &entity.ClientDevice{
		ID:        deviceM.ID,
		ClientID:  deviceM.ClientID,
		DeviceID:  deviceM.DeviceID,
		FCMToken:  deviceM.FCMToken,
		Platform:  deviceM.Platform,
		IsActive:  deviceM.IsActive,
		CreatedAt: deviceM.CreatedAt,
		UpdatedAt: deviceM.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.ClientDevice) *model.ClientDeviceModel {
	if device == nil {
		return nil
	}

	return &model.ClientDeviceModel{
		ID:        device.ID,
		ClientID:  device.ClientID,
		DeviceID:  device.DeviceID,
		FCMToken:  device.FCMToken,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}

func toRegistrationDomain(regM *model.RegistrationModel) *entity.Registration {
	if regM == nil {
		return nil
	}

	return &entity.Registration{
		ClientID:  regM.ClientID,
		ShopID:    regM.ShopID,
		Points:    regM.Points,
		NbVisit:   regM.NbVisit,
		LastVisit: regM.LastVisit,
		Snapshot: entity.DemographicSnapshot{
			Name:       regM.Snapshot.Name,
			Gender:     regM.Snapshot.Gender,
			Phone:      regM.Snapshot.Phone,
			PostalCode: regM.Snapshot.PostalCode,
			Address:    regM.Snapshot.Address,
			Birthday:   regM.Snapshot.Birthday,
			ImageURL:   regM.Snapshot.ImageURL,
		},
		NotificationsActive: regM.NotificationsActive,
		CreatedAt:           regM.CreatedAt,
		UpdatedAt:           regM.UpdatedAt,
	}
}

func fromRegistrationDomain(reg *entity.Registration) *model.RegistrationModel {
	if reg == nil {
		return nil
	}

	return &model.RegistrationModel{
		ClientID:  reg.ClientID,
		ShopID:    reg.ShopID,
		Points:    reg.Points,
		NbVisit:   reg.NbVisit,
		LastVisit: reg.LastVisit,
		Snapshot: model.SnapshotModel{
			Name:       reg.Snapshot.Name,
			Gender:     reg.Snapshot.Gender,
			Phone:      reg.Snapshot.Phone,
			PostalCode: reg.Snapshot.PostalCode,
			Address:    reg.Snapshot.Address,
			Birthday:   reg.Snapshot.Birthday,
			ImageURL:   reg.Snapshot.ImageURL,
		},
		NotificationsActive: reg.NotificationsActive,
		CreatedAt:           reg.CreatedAt,
		UpdatedAt:           reg.UpdatedAt,
	}
}

func toPartnerSide(active bool, value, description *string) entity.PartnerSide {
	side := entity.PartnerSide{Active: active}
	if value != nil {
		side.RewardSelected = &entity.GiftReward{Value: *value}
		if description != nil {
			side.RewardSelected.Description = *description
		}
	}

	return side
}

func toPartnerLinkDomain(linkM *model.PartnerLinkModel) *entity.PartnerLink {
	if linkM == nil {
		return nil
	}

	return &entity.PartnerLink{
		ID:        linkM.ID,
		ShopA:     linkM.ShopA,
		ShopB:     linkM.ShopB,
		Status:    entity.PartnerStatus(linkM.Status),
		SideA:     toPartnerSide(linkM.SideAActive, linkM.SideARewardValue, linkM.SideARewardDescription),
		SideB:     toPartnerSide(linkM.SideBActive, linkM.SideBRewardValue, linkM.SideBRewardDescription),
		CreatedAt: linkM.CreatedAt,
		UpdatedAt: linkM.UpdatedAt,
	}
}

func toGiftDomain(giftM *model.GiftModel) *entity.Gift {
	if giftM == nil {
		return nil
	}

	return &entity.Gift{
		ClientID:      giftM.ClientID,
		Key:           entity.GiftKey(giftM.GiftKey),
		ShopID:        giftM.ShopID,
		PartnerShopID: giftM.PartnerShopID,
		Reward: entity.GiftReward{
			Value:       giftM.RewardValue,
			Description: giftM.RewardDescription,
		},
		Used:      giftM.Used,
		UsedAt:    giftM.UsedAt,
		CreatedAt: giftM.CreatedAt,
	}
}

func fromGiftDomain(gift *entity.Gift) *model.GiftModel {
	if gift == nil {
		return nil
	}

	return &model.GiftModel{
		ClientID:          gift.ClientID,
		GiftKey:           gift.Key.String(),
		ShopID:            gift.ShopID,
		PartnerShopID:     gift.PartnerShopID,
		RewardValue:       gift.Reward.Value,
		RewardDescription: gift.Reward.Description,
		Used:              gift.Used,
		UsedAt:            gift.UsedAt,
		CreatedAt:         gift.CreatedAt,
	}
}

func toRedemptionDomain(recordM *model.RedemptionModel) *entity.RedemptionRecord {
	if recordM == nil {
		return nil
	}

	return &entity.RedemptionRecord{
		ID:           recordM.ID,
		ClientID:     recordM.ClientID,
		ShopID:       recordM.ShopID,
		Kind:         entity.RedemptionKind(recordM.Kind),
		RewardID:     recordM.RewardID,
		GiftKey:      entity.GiftKey(recordM.GiftKey),
		Value:        recordM.Value,
		Description:  recordM.Description,
		Cost:         recordM.Cost,
		PointsBefore: recordM.PointsBefore,
		PointsAfter:  recordM.PointsAfter,
		CreatedAt:    recordM.CreatedAt,
	}
}

func fromRedemptionDomain(record *entity.RedemptionRecord) *model.RedemptionModel {
	if record == nil {
		return nil
	}

	return &model.RedemptionModel{
		ID:           record.ID,
		ClientID:     record.ClientID,
		ShopID:       record.ShopID,
		Kind:         string(record.Kind),
		RewardID:     record.RewardID,
		GiftKey:      record.GiftKey.String(),
		Value:        record.Value,
		Description:  record.Description,
		Cost:         record.Cost,
		PointsBefore: record.PointsBefore,
		PointsAfter:  record.PointsAfter,
		CreatedAt:    record.CreatedAt,
	}
}

func toVisitDomain(visitM *model.VisitModel) *entity.VisitRecord {
	if visitM == nil {
		return nil
	}

	return &entity.VisitRecord{
		ID:            visitM.ID,
		ClientID:      visitM.ClientID,
		ShopID:        visitM.ShopID,
		Tier:          entity.Tier(visitM.Tier),
		AwardedPoints: visitM.AwardedPoints,
		BalanceAfter:  visitM.BalanceAfter,
		VisitedAt:     visitM.VisitedAt,
	}
}

func fromVisitDomain(record *entity.VisitRecord) *model.VisitModel {
	if record == nil {
		return nil
	}

	return &model.VisitModel{
		ID:            record.ID,
		ClientID:      record.ClientID,
		ShopID:        record.ShopID,
		Tier:          string(record.Tier),
		AwardedPoints: record.AwardedPoints,
		BalanceAfter:  record.BalanceAfter,
		VisitedAt:     record.VisitedAt,
	}
}
