package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific store driver.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same transaction.
	// Reads that precede a write inside fn see the latest committed state and are protected
	// against concurrent writers (row locks, optimistic retries or a serialising mutex).
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a transaction,
// or to the plain store connection outside of one.
type RepositoryFactory interface {
	NewShopRepository() ShopRepository
	NewClientRepository() ClientRepository
	NewRegistrationRepository() RegistrationRepository
	NewPartnerRepository() PartnerRepository
	NewGiftRepository() GiftRepository
	NewRedemptionRepository() RedemptionRepository
	NewVisitRepository() VisitRepository
}
