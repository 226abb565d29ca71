package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
)

type shopRepository struct {
	f *factory
}

func (r *shopRepository) FindShopByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shop *entity.Shop
	err := r.f.with(func(d *dataset) error {
		found, ok := d.shops[id]
		if !ok {
			return repository.ErrShopNotFound
		}
		cp := *found
		shop = &cp

		return nil
	})

	return shop, err
}

func (r *shopRepository) FindShopByTagID(_ context.Context, tagID string) (*entity.Shop, error) {
	var shop *entity.Shop
	err := r.f.with(func(d *dataset) error {
		for _, candidate := range d.shops {
			if candidate.Rules.HasTag(tagID) {
				cp := *candidate
				shop = &cp

				return nil
			}
		}

		return repository.ErrShopNotFound
	})

	return shop, err
}

func (r *shopRepository) FindRewardsByShop(_ context.Context, shopID uuid.UUID) ([]*entity.RewardDefinition, error) {
	var rewards []*entity.RewardDefinition
	err := r.f.with(func(d *dataset) error {
		rewards = make([]*entity.RewardDefinition, 0, len(d.rewards[shopID]))
		for _, def := range d.rewards[shopID] {
			cp := *def
			rewards = append(rewards, &cp)
		}

		return nil
	})

	return entity.NewRewardLadder(rewards), err
}

func (r *shopRepository) FindRewardByID(_ context.Context, shopID, rewardID uuid.UUID) (*entity.RewardDefinition, error) {
	var reward *entity.RewardDefinition
	err := r.f.with(func(d *dataset) error {
		for _, def := range d.rewards[shopID] {
			if def.ID == rewardID {
				cp := *def
				reward = &cp

				return nil
			}
		}

		return repository.ErrRewardNotFound
	})

	return reward, err
}

type clientRepository struct {
	f *factory
}

func (r *clientRepository) FindClientByID(_ context.Context, id uuid.UUID) (*entity.ClientProfile, error) {
	var client *entity.ClientProfile
	err := r.f.with(func(d *dataset) error {
		found, ok := d.clients[id]
		if !ok {
			return repository.ErrClientNotFound
		}
		cp := *found
		client = &cp

		return nil
	})

	return client, err
}

func (r *clientRepository) UpsertClient(_ context.Context, client *entity.ClientProfile) error {
	return r.f.with(func(d *dataset) error {
		cp := *client
		if existing, ok := d.clients[client.ID]; ok {
			cp.CreatedAt = existing.CreatedAt
		}
		d.clients[client.ID] = &cp

		return nil
	})
}

func (r *clientRepository) FindActiveDevicesByClient(_ context.Context, clientID uuid.UUID) ([]*entity.ClientDevice, error) {
	var devices []*entity.ClientDevice
	err := r.f.with(func(d *dataset) error {
		for _, device := range d.devices {
			if device.ClientID == clientID && device.IsActive {
				cp := *device
				devices = append(devices, &cp)
			}
		}

		return nil
	})
	slices.SortFunc(devices, func(a, b *entity.ClientDevice) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return devices, err
}

func (r *clientRepository) UpsertDevice(_ context.Context, device *entity.ClientDevice) error {
	return r.f.with(func(d *dataset) error {
		for _, existing := range d.devices {
			if existing.ClientID == device.ClientID && existing.DeviceID == device.DeviceID {
				existing.FCMToken = device.FCMToken
				existing.Platform = device.Platform
				existing.IsActive = true
				existing.UpdatedAt = device.UpdatedAt
				*device = *existing

				return nil
			}
		}

		if device.ID == uuid.Nil {
			device.ID = uuid.New()
		}
		device.IsActive = true
		cp := *device
		d.devices[device.ID] = &cp

		return nil
	})
}

func (r *clientRepository) DeactivateDevicesByToken(_ context.Context, tokens []string) error {
	return r.f.with(func(d *dataset) error {
		for _, device := range d.devices {
			if slices.Contains(tokens, device.FCMToken) {
				device.IsActive = false
			}
		}

		return nil
	})
}

type registrationRepository struct {
	f *factory
}

func (r *registrationRepository) FindRegistration(_ context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	var reg *entity.Registration
	err := r.f.with(func(d *dataset) error {
		found, ok := d.registrations[registrationKey{clientID: clientID, shopID: shopID}]
		if !ok {
			return repository.ErrRegistrationNotFound
		}
		cp := *found
		reg = &cp

		return nil
	})

	return reg, err
}

// LockRegistration is a plain read: the transaction already holds the store lock.
func (r *registrationRepository) LockRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error) {
	return r.FindRegistration(ctx, clientID, shopID)
}

func (r *registrationRepository) CreateRegistration(_ context.Context, reg *entity.Registration) error {
	return r.f.with(func(d *dataset) error {
		key := registrationKey{clientID: reg.ClientID, shopID: reg.ShopID}
		if _, ok := d.registrations[key]; ok {
			return repository.ErrConcurrentModification
		}
		cp := *reg
		d.registrations[key] = &cp

		return nil
	})
}

func (r *registrationRepository) UpdateRegistration(_ context.Context, reg *entity.Registration) error {
	return r.f.with(func(d *dataset) error {
		key := registrationKey{clientID: reg.ClientID, shopID: reg.ShopID}
		if _, ok := d.registrations[key]; !ok {
			return repository.ErrRegistrationNotFound
		}
		cp := *reg
		d.registrations[key] = &cp

		return nil
	})
}

func (r *registrationRepository) FindRegistrationsByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Registration, error) {
	var regs []*entity.Registration
	err := r.f.with(func(d *dataset) error {
		for key, reg := range d.registrations {
			if key.clientID == clientID {
				cp := *reg
				regs = append(regs, &cp)
			}
		}

		return nil
	})
	slices.SortFunc(regs, func(a, b *entity.Registration) int {
		return b.LastVisit.Compare(a.LastVisit)
	})

	return regs, err
}

func (r *registrationRepository) ExistsRegistration(_ context.Context, clientID, shopID uuid.UUID) (bool, error) {
	var exists bool
	err := r.f.with(func(d *dataset) error {
		_, exists = d.registrations[registrationKey{clientID: clientID, shopID: shopID}]

		return nil
	})

	return exists, err
}

type partnerRepository struct {
	f *factory
}

func (r *partnerRepository) FindConfirmedLinksByShop(_ context.Context, shopID uuid.UUID) ([]*entity.PartnerLink, error) {
	var links []*entity.PartnerLink
	err := r.f.with(func(d *dataset) error {
		for _, link := range d.partners {
			if link.Status == entity.PartnerStatusConfirmed && (link.ShopA == shopID || link.ShopB == shopID) {
				cp := *link
				links = append(links, &cp)
			}
		}

		return nil
	})
	slices.SortFunc(links, func(a, b *entity.PartnerLink) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return links, err
}

type giftRepository struct {
	f *factory
}

func (r *giftRepository) FindGift(_ context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	var gift *entity.Gift
	err := r.f.with(func(d *dataset) error {
		found, ok := d.gifts[giftKey{clientID: clientID, key: key}]
		if !ok {
			return repository.ErrGiftNotFound
		}
		cp := *found
		gift = &cp

		return nil
	})

	return gift, err
}

// LockGift is a plain read: the transaction already holds the store lock.
func (r *giftRepository) LockGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error) {
	return r.FindGift(ctx, clientID, key)
}

func (r *giftRepository) CreateGift(_ context.Context, gift *entity.Gift) error {
	return r.f.with(func(d *dataset) error {
		key := giftKey{clientID: gift.ClientID, key: gift.Key}
		if _, ok := d.gifts[key]; ok {
			return repository.ErrDuplicateGift
		}
		cp := *gift
		d.gifts[key] = &cp

		return nil
	})
}

func (r *giftRepository) MarkGiftUsed(_ context.Context, clientID uuid.UUID, key entity.GiftKey, usedAt time.Time) error {
	return r.f.with(func(d *dataset) error {
		gift, ok := d.gifts[giftKey{clientID: clientID, key: key}]
		if !ok {
			return repository.ErrGiftNotFound
		}
		if gift.Used {
			return repository.ErrGiftAlreadyUsed
		}
		gift.Used = true
		gift.UsedAt = &usedAt

		return nil
	})
}

func (r *giftRepository) FindGiftsByClient(_ context.Context, clientID uuid.UUID) ([]*entity.Gift, error) {
	var gifts []*entity.Gift
	err := r.f.with(func(d *dataset) error {
		for key, gift := range d.gifts {
			if key.clientID == clientID {
				cp := *gift
				gifts = append(gifts, &cp)
			}
		}

		return nil
	})
	slices.SortFunc(gifts, func(a, b *entity.Gift) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return gifts, err
}

type redemptionRepository struct {
	f *factory
}

func (r *redemptionRepository) CreateRedemption(_ context.Context, record *entity.RedemptionRecord) error {
	return r.f.with(func(d *dataset) error {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		cp := *record
		d.redemptions = append(d.redemptions, &cp)

		return nil
	})
}

func (r *redemptionRepository) FindRedemptionsByClient(_ context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error) {
	var records []*entity.RedemptionRecord
	err := r.f.with(func(d *dataset) error {
		for i := len(d.redemptions) - 1; i >= 0; i-- {
			if d.redemptions[i].ClientID == clientID {
				cp := *d.redemptions[i]
				records = append(records, &cp)
			}
		}

		return nil
	})

	return page(records, limit, offset), err
}

type visitRepository struct {
	f *factory
}

func (r *visitRepository) CreateVisit(_ context.Context, record *entity.VisitRecord) error {
	return r.f.with(func(d *dataset) error {
		if record.ID == uuid.Nil {
			record.ID = uuid.New()
		}
		if slices.ContainsFunc(d.visits, func(v *entity.VisitRecord) bool { return v.ID == record.ID }) {
			return nil
		}
		cp := *record
		d.visits = append(d.visits, &cp)

		return nil
	})
}

func (r *visitRepository) FindVisitsByClient(_ context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error) {
	var records []*entity.VisitRecord
	err := r.f.with(func(d *dataset) error {
		for _, visit := range d.visits {
			if visit.ClientID == clientID {
				cp := *visit
				records = append(records, &cp)
			}
		}

		return nil
	})
	slices.SortStableFunc(records, func(a, b *entity.VisitRecord) int {
		return b.VisitedAt.Compare(a.VisitedAt)
	})

	return page(records, limit, offset), err
}
