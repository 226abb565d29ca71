package firestore

import (
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

type shopDoc struct {
	Name                 string    `firestore:"name"`
	NewClientPoints      int       `firestore:"newClientPoints"`
	StandardClientPoints int       `firestore:"standardClientPoints"`
	VIPClientPoints      int       `firestore:"vipClientPoints"`
	VIPVisitThreshold    int       `firestore:"vipVisitThreshold"`
	VIPActive            bool      `firestore:"vipActive"`
	CooldownSeconds      int       `firestore:"cooldownSeconds"`
	NFCTagIDs            []string  `firestore:"nfcTagIds"`
	CreatedAt            time.Time `firestore:"createdAt"`
	UpdatedAt            time.Time `firestore:"updatedAt"`
}

type rewardDoc struct {
	Points      int       `firestore:"points"`
	Value       string    `firestore:"value"`
	Description string    `firestore:"description"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

type clientDoc struct {
	Name       string     `firestore:"name"`
	Gender     string     `firestore:"gender"`
	Phone      string     `firestore:"phone"`
	PostalCode string     `firestore:"postalCode"`
	Address    string     `firestore:"address"`
	Birthday   *time.Time `firestore:"birthday"`
	ImageURL   string     `firestore:"imageUrl"`
	Complete   bool       `firestore:"complete"`
	CreatedAt  time.Time  `firestore:"createdAt"`
	UpdatedAt  time.Time  `firestore:"updatedAt"`
}

type deviceDoc struct {
	ID        string    `firestore:"id"`
	ClientID  string    `firestore:"clientId"`
	FCMToken  string    `firestore:"fcmToken"`
	Platform  string    `firestore:"platform"`
	IsActive  bool      `firestore:"isActive"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

type snapshotDoc struct {
	Name       string     `firestore:"name"`
	Gender     string     `firestore:"gender"`
	Phone      string     `firestore:"phone"`
	PostalCode string     `firestore:"postalCode"`
	Address    string     `firestore:"address"`
	Birthday   *time.Time `firestore:"birthday"`
	ImageURL   string     `firestore:"imageUrl"`
}

type registrationDoc struct {
	Points              int         `firestore:"points"`
	NbVisit             int         `firestore:"nbVisit"`
	LastVisit           time.Time   `firestore:"lastVisit"`
	Snapshot            snapshotDoc `firestore:"snapshot"`
	NotificationsActive bool        `firestore:"notificationsActive"`
	CreatedAt           time.Time   `firestore:"createdAt"`
	UpdatedAt           time.Time   `firestore:"updatedAt"`
}

type giftRewardDoc struct {
	Value       string `firestore:"value"`
	Description string `firestore:"description"`
}

type partnerSideDoc struct {
	Active         bool           `firestore:"active"`
	RewardSelected *giftRewardDoc `firestore:"rewardSelected"`
}

type partnerDoc struct {
	ShopA     string         `firestore:"shopA"`
	ShopB     string         `firestore:"shopB"`
	ShopIDs   []string       `firestore:"shopIds"`
	Status    string         `firestore:"status"`
	SideA     partnerSideDoc `firestore:"sideA"`
	SideB     partnerSideDoc `firestore:"sideB"`
	CreatedAt time.Time      `firestore:"createdAt"`
	UpdatedAt time.Time      `firestore:"updatedAt"`
}

type giftDoc struct {
	ShopID        string        `firestore:"shopId"`
	PartnerShopID string        `firestore:"partnerShopId"`
	Reward        giftRewardDoc `firestore:"reward"`
	Used          bool          `firestore:"used"`
	UsedAt        *time.Time    `firestore:"usedAt"`
	CreatedAt     time.Time     `firestore:"createdAt"`
}

type redemptionDoc struct {
	ShopID       string    `firestore:"shopId"`
	Kind         string    `firestore:"kind"`
	RewardID     string    `firestore:"rewardId,omitempty"`
	GiftKey      string    `firestore:"giftKey,omitempty"`
	Value        string    `firestore:"value"`
	Description  string    `firestore:"description"`
	Cost         int       `firestore:"cost"`
	PointsBefore int       `firestore:"pointsBefore"`
	PointsAfter  int       `firestore:"pointsAfter"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

type visitDoc struct {
	ShopID        string    `firestore:"shopId"`
	Tier          string    `firestore:"tier"`
	AwardedPoints int       `firestore:"awardedPoints"`
	BalanceAfter  int       `firestore:"balanceAfter"`
	VisitedAt     time.Time `firestore:"visitedAt"`
}

// parseID tolerates malformed document ids by mapping them to uuid.Nil.
func parseID(id string) uuid.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil
	}

	return parsed
}

func toShopDomain(id string, doc *shopDoc) *entity.Shop {
	return &entity.Shop{
		ID:   parseID(id),
		Name: doc.Name,
		Rules: entity.ShopRuleConfig{
			NewClientPoints:      doc.NewClientPoints,
			StandardClientPoints: doc.StandardClientPoints,
			VIPClientPoints:      doc.VIPClientPoints,
			VIPVisitThreshold:    doc.VIPVisitThreshold,
			VIPActive:            doc.VIPActive,
			CooldownSeconds:      doc.CooldownSeconds,
			NFCTagIDs:            doc.NFCTagIDs,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toRewardDomain(id string, shopID uuid.UUID, doc *rewardDoc) *entity.RewardDefinition {
	return &entity.RewardDefinition{
		ID:          parseID(id),
		ShopID:      shopID,
		Points:      doc.Points,
		Value:       doc.Value,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
	}
}

func toClientDomain(id string, doc *clientDoc) *entity.ClientProfile {
	return &entity.ClientProfile{
		ID:         parseID(id),
		Name:       doc.Name,
		Gender:     doc.Gender,
		Phone:      doc.Phone,
		PostalCode: doc.PostalCode,
		Address:    doc.Address,
		Birthday:   doc.Birthday,
		ImageURL:   doc.ImageURL,
		Complete:   doc.Complete,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func fromClientDomain(client *entity.ClientProfile) *clientDoc {
	return &clientDoc{
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

func toDeviceDomain(deviceID string, doc *deviceDoc) *entity.ClientDevice {
	return &entity.ClientDevice{
		ID:        parseID(doc.ID),
		ClientID:  parseID(doc.ClientID),
		DeviceID:  deviceID,
		FCMToken:  doc.FCMToken,
		Platform:  doc.Platform,
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toRegistrationDomain(clientID uuid.UUID, shopID string, doc *registrationDoc) *entity.Registration {
	return &entity.Registration{
		ClientID:  clientID,
		ShopID:    parseID(shopID),
		Points:    doc.Points,
		NbVisit:   doc.NbVisit,
		LastVisit: doc.LastVisit,
		Snapshot: entity.DemographicSnapshot{
			Name:       doc.Snapshot.Name,
			Gender:     doc.Snapshot.Gender,
			Phone:      doc.Snapshot.Phone,
			PostalCode: doc.Snapshot.PostalCode,
			Address:    doc.Snapshot.Address,
			Birthday:   doc.Snapshot.Birthday,
			ImageURL:   doc.Snapshot.ImageURL,
		},
		NotificationsActive: doc.NotificationsActive,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}

func fromRegistrationDomain(reg *entity.Registration) *registrationDoc {
	return &registrationDoc{
		Points:    reg.Points,
		NbVisit:   reg.NbVisit,
		LastVisit: reg.LastVisit,
		Snapshot: snapshotDoc{
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

func toPartnerSide(doc partnerSideDoc) entity.PartnerSide {
	side := entity.PartnerSide{Active: doc.Active}
	if doc.RewardSelected != nil {
		side.RewardSelected = &entity.GiftReward{
			Value:       doc.RewardSelected.Value,
			Description: doc.RewardSelected.Description,
		}
	}

	return side
}

func toPartnerLinkDomain(id string, doc *partnerDoc) *entity.PartnerLink {
	return &entity.PartnerLink{
		ID:        parseID(id),
		ShopA:     parseID(doc.ShopA),
		ShopB:     parseID(doc.ShopB),
		Status:    entity.PartnerStatus(doc.Status),
		SideA:     toPartnerSide(doc.SideA),
		SideB:     toPartnerSide(doc.SideB),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toGiftDomain(clientID uuid.UUID, key string, doc *giftDoc) *entity.Gift {
	return &entity.Gift{
		ClientID:      clientID,
		Key:           entity.GiftKey(key),
		ShopID:        parseID(doc.ShopID),
		PartnerShopID: parseID(doc.PartnerShopID),
		Reward: entity.GiftReward{
			Value:       doc.Reward.Value,
			Description: doc.Reward.Description,
		},
		Used:      doc.Used,
		UsedAt:    doc.UsedAt,
		CreatedAt: doc.CreatedAt,
	}
}

func fromGiftDomain(gift *entity.Gift) *giftDoc {
	return &giftDoc{
		ShopID:        gift.ShopID.String(),
		PartnerShopID: gift.PartnerShopID.String(),
		Reward: giftRewardDoc{
			Value:       gift.Reward.Value,
			Description: gift.Reward.Description,
		},
		Used:      gift.Used,
		UsedAt:    gift.UsedAt,
		CreatedAt: gift.CreatedAt,
	}
}

func toRedemptionDomain(clientID uuid.UUID, id string, doc *redemptionDoc) *entity.RedemptionRecord {
	record := &entity.RedemptionRecord{
		ID:           parseID(id),
		ClientID:     clientID,
		ShopID:       parseID(doc.ShopID),
		Kind:         entity.RedemptionKind(doc.Kind),
		GiftKey:      entity.GiftKey(doc.GiftKey),
		Value:        doc.Value,
		Description:  doc.Description,
		Cost:         doc.Cost,
		PointsBefore: doc.PointsBefore,
		PointsAfter:  doc.PointsAfter,
		CreatedAt:    doc.CreatedAt,
	}
	if doc.RewardID != "" {
		rewardID := parseID(doc.RewardID)
		record.RewardID = &rewardID
	}

	return record
}

func fromRedemptionDomain(record *entity.RedemptionRecord) *redemptionDoc {
	doc := &redemptionDoc{
		ShopID:       record.ShopID.String(),
		Kind:         string(record.Kind),
		GiftKey:      record.GiftKey.String(),
		Value:        record.Value,
		Description:  record.Description,
		Cost:         record.Cost,
		PointsBefore: record.PointsBefore,
		PointsAfter:  record.PointsAfter,
		CreatedAt:    record.CreatedAt,
	}
	if record.RewardID != nil {
		doc.RewardID = record.RewardID.String()
	}

	return doc
}

func toVisitDomain(clientID uuid.UUID, id string, doc *visitDoc) *entity.VisitRecord {
	return &entity.VisitRecord{
		ID:            parseID(id),
		ClientID:      clientID,
		ShopID:        parseID(doc.ShopID),
		Tier:          entity.Tier(doc.Tier),
		AwardedPoints: doc.AwardedPoints,
		BalanceAfter:  doc.BalanceAfter,
		VisitedAt:     doc.VisitedAt,
	}
}

func fromVisitDomain(record *entity.VisitRecord) *visitDoc {
	return &visitDoc{
		ShopID:        record.ShopID.String(),
		Tier:          string(record.Tier),
		AwardedPoints: record.AwardedPoints,
		BalanceAfter:  record.BalanceAfter,
		VisitedAt:     record.VisitedAt,
	}
}
