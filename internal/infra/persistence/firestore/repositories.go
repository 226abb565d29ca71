package firestore

import (
	"context"
	"sort"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

// shopRepository reads shops/{shopId} and shops/{shopId}/rewards.
type shopRepository struct {
	s *session
}

func (repo *shopRepository) FindShopByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	snap, err := repo.s.get(ctx, repo.s.client.Collection(shopsCollection).Doc(id.String()))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by ID")
	}

	var doc shopDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode shop")
	}

	return toShopDomain(snap.Ref.ID, &doc), nil
}

func (repo *shopRepository) FindShopByTagID(ctx context.Context, tagID string) (*entity.Shop, error) {
	q := repo.s.client.Collection(shopsCollection).
		Where("nfcTagIds", "array-contains", tagID).
		Limit(1)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop by tag")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrShopNotFound
	}

	var doc shopDoc
	if err := snaps[0].DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode shop")
	}

	return toShopDomain(snaps[0].Ref.ID, &doc), nil
}

func (repo *shopRepository) FindRewardsByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.RewardDefinition, error) {
	q := repo.s.client.Collection(shopsCollection).Doc(shopID.String()).
		Collection(rewardsCollection).
		OrderBy("points", firestore.Asc)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rewards by shop")
	}

	rewards := make([]*entity.RewardDefinition, 0, len(snaps))
	for _, snap := range snaps {
		var doc rewardDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode reward")
		}
		rewards = append(rewards, toRewardDomain(snap.Ref.ID, shopID, &doc))
	}

	return rewards, nil
}

func (repo *shopRepository) FindRewardByID(ctx context.Context, shopID, rewardID uuid.UUID) (*entity.RewardDefinition, error) {
	ref := repo.s.client.Collection(shopsCollection).Doc(shopID.String()).
		Collection(rewardsCollection).Doc(rewardID.String())

	snap, err := repo.s.get(ctx, ref)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by ID")
	}

	var doc rewardDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode reward")
	}

	return toRewardDomain(snap.Ref.ID, shopID, &doc), nil
}

// clientRepository stores clients/{clientId} and clients/{clientId}/devices/{deviceId}.
type clientRepository struct {
	s *session
}

func (repo *clientRepository) FindClientByID(ctx context.Context, id uuid.UUID) (*entity.ClientProfile, error) {
	snap, err := repo.s.get(ctx, repo.s.clientDoc(id.String()))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by ID")
	}

	var doc clientDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode client")
	}

	return toClientDomain(snap.Ref.ID, &doc), nil
}

func (repo *clientRepository) UpsertClient(ctx context.Context, client *entity.ClientProfile) error {
	now := time.Now().UTC()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}
	client.UpdatedAt = now

	if err := repo.s.set(ctx, repo.s.clientDoc(client.ID.String()), fromClientDomain(client)); err != nil {
		return errors.Wrap(err, "failed to upsert client")
	}

	return nil
}

func (repo *clientRepository) FindActiveDevicesByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.ClientDevice, error) {
	q := repo.s.clientDoc(clientID.String()).Collection(devicesCollection).
		Where("isActive", "==", true)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by client")
	}

	devices := make([]*entity.ClientDevice, 0, len(snaps))
	for _, snap := range snaps {
		var doc deviceDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode device")
		}
		devices = append(devices, toDeviceDomain(snap.Ref.ID, &doc))
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].CreatedAt.After(devices[j].CreatedAt)
	})

	return devices, nil
}

func (repo *clientRepository) UpsertDevice(ctx context.Context, device *entity.ClientDevice) error {
	ref := repo.s.clientDoc(device.ClientID.String()).Collection(devicesCollection).Doc(device.DeviceID)
	now := time.Now().UTC()

	snap, err := repo.s.get(ctx, ref)
	switch {
	case err == nil:
		var existing deviceDoc
		if err := snap.DataTo(&existing); err != nil {
			return errors.Wrap(err, "failed to decode device")
		}
		device.ID = parseID(existing.ID)
		device.CreatedAt = existing.CreatedAt
	case isNotFound(err):
		if device.ID == uuid.Nil {
			device.ID = uuid.Must(uuid.NewV7())
		}
		device.CreatedAt = now
	default:
		return errors.Wrap(err, "failed to find device")
	}
	device.UpdatedAt = now

	doc := &deviceDoc{
		ID:        device.ID.String(),
		ClientID:  device.ClientID.String(),
		FCMToken:  device.FCMToken,
		Platform:  device.Platform,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
	if err := repo.s.set(ctx, ref, doc); err != nil {
		return errors.Wrap(err, "failed to upsert device")
	}

	return nil
}

func (repo *clientRepository) DeactivateDevicesByToken(ctx context.Context, tokens []string) error {
	now := time.Now().UTC()

	for start := 0; start < len(tokens); start += maxInFilterValues {
		end := min(start+maxInFilterValues, len(tokens))

		q := repo.s.client.CollectionGroup(devicesCollection).
			Where("fcmToken", "in", tokens[start:end])

		snaps, err := repo.s.documents(ctx, q)
		if err != nil {
			return errors.Wrap(err, "failed to find devices by token")
		}

		for _, snap := range snaps {
			if err := repo.s.update(ctx, snap.Ref, []firestore.Update{
				{Path: "isActive", Value: false},
				{Path: "updatedAt", Value: now},
			}); err != nil {
				return errors.Wrap(err, "failed to deactivate device")
			}
		}
	}

	return nil
}

// registrationRepository stores clients/{clientId}/registrations/{shopId}.
type registrationRepository struct {
	s *session
}

func (repo *registrationRepository) ref(clientID, shopID uuid.UUID) *firestore.DocumentRef {
	return repo.s.clientDoc(clientID.String()).Collection(registrationsCollection).Doc(shopID.String())
}

func (repo *registrationRepository) FindRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	snap, err := repo.s.get(ctx, repo.ref(clientID, shopID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration")
	}

	var doc registrationDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode registration")
	}

	return toRegistrationDomain(clientID, snap.Ref.ID, &doc), nil
}

// LockRegistration is a transactional read. Firestore aborts the transaction
// when the document changes before commit.
func (repo *registrationRepository) LockRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	return repo.FindRegistration(ctx, clientID, shopID)
}

func (repo *registrationRepository) CreateRegistration(ctx context.Context, reg *entity.Registration) error {
	if err := repo.s.create(ctx, repo.ref(reg.ClientID, reg.ShopID), fromRegistrationDomain(reg)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrConcurrentModification
		}

		return errors.Wrap(err, "failed to create registration")
	}

	return nil
}

func (repo *registrationRepository) UpdateRegistration(ctx context.Context, reg *entity.Registration) error {
	doc := fromRegistrationDomain(reg)

	err := repo.s.update(ctx, repo.ref(reg.ClientID, reg.ShopID), []firestore.Update{
		{Path: "points", Value: doc.Points},
		{Path: "nbVisit", Value: doc.NbVisit},
		{Path: "lastVisit", Value: doc.LastVisit},
		{Path: "snapshot", Value: doc.Snapshot},
		{Path: "notificationsActive", Value: doc.NotificationsActive},
		{Path: "updatedAt", Value: doc.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrRegistrationNotFound
		}

		return errors.Wrap(err, "failed to update registration")
	}

	return nil
}

func (repo *registrationRepository) FindRegistrationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Registration, error) {
	q := repo.s.clientDoc(clientID.String()).Collection(registrationsCollection).
		OrderBy("lastVisit", firestore.Desc)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by client")
	}

	regs := make([]*entity.Registration, 0, len(snaps))
	for _, snap := range snaps {
		var doc registrationDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode registration")
		}
		regs = append(regs, toRegistrationDomain(clientID, snap.Ref.ID, &doc))
	}

	return regs, nil
}

func (repo *registrationRepository) ExistsRegistration(ctx context.Context, clientID, shopID uuid.UUID) (bool, error) {
	_, err := repo.FindRegistration(ctx, clientID, shopID)
	if errors.Is(err, repository.ErrRegistrationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// partnerRepository reads partners/{linkId}. Each link stores both shop ids in
// shopIds so one array-contains query finds it from either side.
type partnerRepository struct {
	s *session
}

func (repo *partnerRepository) FindConfirmedLinksByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.PartnerLink, error) {
	q := repo.s.client.Collection(partnersCollection).
		Where("shopIds", "array-contains", shopID.String()).
		Where("status", "==", string(entity.PartnerStatusConfirmed))

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find partner links")
	}

	links := make([]*entity.PartnerLink, 0, len(snaps))
	for _, snap := range snaps {
		var doc partnerDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode partner link")
		}
		links = append(links, toPartnerLinkDomain(snap.Ref.ID, &doc))
	}

	return links, nil
}

// giftRepository stores clients/{clientId}/gifts/{giftKey}. The document id
// is the gift key, so Create enforces one gift per partnership.
type giftRepository struct {
	s *session
}

func (repo *giftRepository) ref(clientID uuid.UUID, key entity.GiftKey) *firestore.DocumentRef {
	return repo.s.clientDoc(clientID.String()).Collection(giftsCollection).Doc(key.String())
}

func (repo *giftRepository) FindGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	snap, err := repo.s.get(ctx, repo.ref(clientID, key))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find gift")
	}

	var doc giftDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode gift")
	}

	return toGiftDomain(clientID, snap.Ref.ID, &doc), nil
}

func (repo *giftRepository) LockGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	return repo.FindGift(ctx, clientID, key)
}

func (repo *giftRepository) CreateGift(ctx context.Context, gift *entity.Gift) error {
	if err := repo.s.create(ctx, repo.ref(gift.ClientID, gift.Key), fromGiftDomain(gift)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateGift
		}

		return errors.Wrap(err, "failed to create gift")
	}

	return nil
}

// MarkGiftUsed reads then writes. Inside a transaction it must run before any
// other write of that transaction.
func (repo *giftRepository) MarkGiftUsed(ctx context.Context, clientID uuid.UUID, key entity.GiftKey, usedAt time.Time) error {
	gift, err := repo.FindGift(ctx, clientID, key)
	if err != nil {
		return err
	}
	if gift.Used {
		return repository.ErrGiftAlreadyUsed
	}

	if err := repo.s.update(ctx, repo.ref(clientID, key), []firestore.Update{
		{Path: "used", Value: true},
		{Path: "usedAt", Value: usedAt},
	}); err != nil {
		return errors.Wrap(err, "failed to mark gift used")
	}

	return nil
}

func (repo *giftRepository) FindGiftsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Gift, error) {
	q := repo.s.clientDoc(clientID.String()).Collection(giftsCollection).
		OrderBy("createdAt", firestore.Desc)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find gifts by client")
	}

	gifts := make([]*entity.Gift, 0, len(snaps))
	for _, snap := range snaps {
		var doc giftDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode gift")
		}
		gifts = append(gifts, toGiftDomain(clientID, snap.Ref.ID, &doc))
	}

	return gifts, nil
}

// redemptionRepository stores clients/{clientId}/redemptions/{redemptionId}.
type redemptionRepository struct {
	s *session
}

func (repo *redemptionRepository) CreateRedemption(ctx context.Context, record *entity.RedemptionRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.Must(uuid.NewV7())
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	ref := repo.s.clientDoc(record.ClientID.String()).Collection(redemptionsCollection).Doc(record.ID.String())
	if err := repo.s.create(ctx, ref, fromRedemptionDomain(record)); err != nil {
		return errors.Wrap(err, "failed to create redemption")
	}

	return nil
}

func (repo *redemptionRepository) FindRedemptionsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error) {
	q := repo.s.clientDoc(clientID.String()).Collection(redemptionsCollection).
		OrderBy("createdAt", firestore.Desc).
		Offset(offset).
		Limit(limit)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find redemptions by client")
	}

	records := make([]*entity.RedemptionRecord, 0, len(snaps))
	for _, snap := range snaps {
		var doc redemptionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode redemption")
		}
		records = append(records, toRedemptionDomain(clientID, snap.Ref.ID, &doc))
	}

	return records, nil
}

// visitRepository stores clients/{clientId}/visits/{visitId}.
type visitRepository struct {
	s *session
}

func (repo *visitRepository) CreateVisit(ctx context.Context, record *entity.VisitRecord) error {
	ref := repo.s.clientDoc(record.ClientID.String()).Collection(visitsCollection).Doc(record.ID.String())
	if err := repo.s.create(ctx, ref, fromVisitDomain(record)); err != nil {
		if isAlreadyExists(err) {
			return nil
		}

		return errors.Wrap(err, "failed to create visit")
	}

	return nil
}

func (repo *visitRepository) FindVisitsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error) {
	q := repo.s.clientDoc(clientID.String()).Collection(visitsCollection).
		OrderBy("visitedAt", firestore.Desc).
		Offset(offset).
		Limit(limit)

	snaps, err := repo.s.documents(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find visits by client")
	}

	visits := make([]*entity.VisitRecord, 0, len(snaps))
	for _, snap := range snaps {
		var doc visitDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode visit")
		}
		visits = append(visits, toVisitDomain(clientID, snap.Ref.ID, &doc))
	}

	return visits, nil
}
