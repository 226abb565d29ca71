// Package memory is an in-process implementation of the persistence layer.
// Transactions are serialised by a single mutex and rolled back by restoring a snapshot.
package memory

import (
	"context"
	"slices"
	"sync"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/repository"

	"github.com/google/uuid"
)

type registrationKey struct {
	clientID uuid.UUID
	shopID   uuid.UUID
}

type giftKey struct {
	clientID uuid.UUID
	key      entity.GiftKey
}

type dataset struct {
	shops         map[uuid.UUID]*entity.Shop
	rewards       map[uuid.UUID][]*entity.RewardDefinition
	clients       map[uuid.UUID]*entity.ClientProfile
	devices       map[uuid.UUID]*entity.ClientDevice
	registrations map[registrationKey]*entity.Registration
	partners      map[uuid.UUID]*entity.PartnerLink
	gifts         map[giftKey]*entity.Gift
	redemptions   []*entity.RedemptionRecord
	visits        []*entity.VisitRecord
}

func newDataset() *dataset {
	return &dataset{
		shops:         make(map[uuid.UUID]*entity.Shop),
		rewards:       make(map[uuid.UUID][]*entity.RewardDefinition),
		clients:       make(map[uuid.UUID]*entity.ClientProfile),
		devices:       make(map[uuid.UUID]*entity.ClientDevice),
		registrations: make(map[registrationKey]*entity.Registration),
		partners:      make(map[uuid.UUID]*entity.PartnerLink),
		gifts:         make(map[giftKey]*entity.Gift),
	}
}

// clone copies the mutable records. Shops, rewards and partner links are
// read-only for the engine and shared.
func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.shops {
		c.shops[k] = v
	}
	for k, v := range d.rewards {
		c.rewards[k] = v
	}
	for k, v := range d.partners {
		c.partners[k] = v
	}
	for k, v := range d.clients {
		cp := *v
		c.clients[k] = &cp
	}
	for k, v := range d.devices {
		cp := *v
		c.devices[k] = &cp
	}
	for k, v := range d.registrations {
		cp := *v
		c.registrations[k] = &cp
	}
	for k, v := range d.gifts {
		cp := *v
		c.gifts[k] = &cp
	}
	c.redemptions = slices.Clone(d.redemptions)
	c.visits = slices.Clone(d.visits)

	return c
}

// Store holds all records in memory. It implements both
// repository.TransactionManager and repository.RepositoryFactory.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

// Execute runs fn while holding the store lock; an error or panic restores the previous state.
func (s *Store) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if r := recover(); r != nil {
			s.data = snapshot
			panic(r)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(&factory{store: s, inTx: true})
}

func (s *Store) NewShopRepository() repository.ShopRepository {
	return &shopRepository{f: &factory{store: s}}
}

func (s *Store) NewClientRepository() repository.ClientRepository {
	return &clientRepository{f: &factory{store: s}}
}

func (s *Store) NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{f: &factory{store: s}}
}

func (s *Store) NewPartnerRepository() repository.PartnerRepository {
	return &partnerRepository{f: &factory{store: s}}
}

func (s *Store) NewGiftRepository() repository.GiftRepository {
	return &giftRepository{f: &factory{store: s}}
}

func (s *Store) NewRedemptionRepository() repository.RedemptionRepository {
	return &redemptionRepository{f: &factory{store: s}}
}

func (s *Store) NewVisitRepository() repository.VisitRepository {
	return &visitRepository{f: &factory{store: s}}
}

// factory binds repositories either to a running transaction or to the store lock.
type factory struct {
	store *Store
	inTx  bool
}

func (f *factory) with(fn func(d *dataset) error) error {
	if f.inTx {
		return fn(f.store.data)
	}

	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	return fn(f.store.data)
}

func (f *factory) NewShopRepository() repository.ShopRepository {
	return &shopRepository{f: f}
}

func (f *factory) NewClientRepository() repository.ClientRepository {
	return &clientRepository{f: f}
}

func (f *factory) NewRegistrationRepository() repository.RegistrationRepository {
	return &registrationRepository{f: f}
}

func (f *factory) NewPartnerRepository() repository.PartnerRepository {
	return &partnerRepository{f: f}
}

func (f *factory) NewGiftRepository() repository.GiftRepository {
	return &giftRepository{f: f}
}

func (f *factory) NewRedemptionRepository() repository.RedemptionRepository {
	return &redemptionRepository{f: f}
}

func (f *factory) NewVisitRepository() repository.VisitRepository {
	return &visitRepository{f: f}
}

// --- Seeding ---

// SeedShop stores a shop with its reward definitions.
func (s *Store) SeedShop(shop *entity.Shop, rewards ...*entity.RewardDefinition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *shop
	cp.Rules.NFCTagIDs = slices.Clone(shop.Rules.NFCTagIDs)
	s.data.shops[shop.ID] = &cp

	defs := make([]*entity.RewardDefinition, 0, len(rewards))
	for _, reward := range rewards {
		def := *reward
		def.ShopID = shop.ID
		defs = append(defs, &def)
	}
	s.data.rewards[shop.ID] = defs
}

// SeedClient stores a client profile.
func (s *Store) SeedClient(client *entity.ClientProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *client
	s.data.clients[client.ID] = &cp
}

// SeedPartnerLink stores a partnership.
func (s *Store) SeedPartnerLink(link *entity.PartnerLink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *link
	s.data.partners[link.ID] = &cp
}

// SeedRegistration stores a registration as-is.
func (s *Store) SeedRegistration(reg *entity.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *reg
	s.data.registrations[registrationKey{clientID: reg.ClientID, shopID: reg.ShopID}] = &cp
}

// SeedGift stores a gift as-is.
func (s *Store) SeedGift(gift *entity.Gift) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *gift
	s.data.gifts[giftKey{clientID: gift.ClientID, key: gift.Key}] = &cp
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}
