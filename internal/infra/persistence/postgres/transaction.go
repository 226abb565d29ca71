// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"loyalty/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds either a transaction or the plain connection pool and uses it to
// create repository instances bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewRepositoryFactory returns a factory bound to the connection pool, for reads
// and single-statement writes that need no transaction.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) NewShopRepository() repository.ShopRepository {
	return NewShopRepository(f.tx)
}

func (f *gormRepositoryFactory) NewClientRepository() repository.ClientRepository {
	return NewClientRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRegistrationRepository() repository.RegistrationRepository {
	return NewRegistrationRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPartnerRepository() repository.PartnerRepository {
	return NewPartnerRepository(f.tx)
}

func (f *gormRepositoryFactory) NewGiftRepository() repository.GiftRepository {
	return NewGiftRepository(f.tx)
}

func (f *gormRepositoryFactory) NewRedemptionRepository() repository.RedemptionRepository {
	return NewRedemptionRepository(f.tx)
}

func (f *gormRepositoryFactory) NewVisitRepository() repository.VisitRepository {
	return NewVisitRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside fn must never leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("failed to commit transaction: %w", repository.ErrConcurrentModification)
		}
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
