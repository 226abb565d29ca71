// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"time"

	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/errors"
)

// storeError turns a repository failure into the business error callers see.
// Errors that already carry a business code pass through unchanged; anything
// unknown is a persistence failure the caller may retry.
func storeError(err error, details string) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrShopNotFound):
		return domainerrors.ErrShopNotFound
	case errors.Is(err, repository.ErrRewardNotFound):
		return domainerrors.ErrRewardNotFound
	case errors.Is(err, repository.ErrGiftNotFound):
		return domainerrors.ErrGiftNotFound
	case errors.Is(err, repository.ErrGiftAlreadyUsed):
		return domainerrors.ErrGiftAlreadyUsed
	case errors.Is(err, repository.ErrRegistrationNotFound):
		return domainerrors.ErrRegistrationNotFound
	case errors.Is(err, repository.ErrClientNotFound):
		return domainerrors.ErrClientNotFound
	}

	return domainerrors.NewPersistenceError(err, details)
}

// withOperationTimeout bounds an operation by the configured deadline.
func withOperationTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
