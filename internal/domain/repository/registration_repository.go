package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for registration persistence.
var (
	// ErrRegistrationNotFound is returned when the client has no card at the shop.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrConcurrentModification is returned when a concurrent writer won the race
	// on the same record. The whole transaction may be retried.
	ErrConcurrentModification = errors.New("concurrent modification")
)

// RegistrationRepository defines the client-by-shop ledger persistence.
type RegistrationRepository interface {
	// FindRegistration retrieves a registration without locking it.
	FindRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error)

	// LockRegistration retrieves a registration and locks it until the transaction ends.
	LockRegistration(ctx context.Context, clientID, shopID uuid.UUID) (*entity.Registration, error)

	// CreateRegistration persists a new registration.
	// It fails with ErrConcurrentModification when one already exists.
	CreateRegistration(ctx context.Context, reg *entity.Registration) error

	// UpdateRegistration overwrites an existing registration.
	UpdateRegistration(ctx context.Context, reg *entity.Registration) error

	// FindRegistrationsByClient retrieves all cards of a client.
	FindRegistrationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Registration, error)

	// ExistsRegistration reports whether the client has a card at the shop.
	ExistsRegistration(ctx context.Context, clientID, shopID uuid.UUID) (bool, error)
}
