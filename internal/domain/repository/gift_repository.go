package repository

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for gift persistence.
var (
	// ErrGiftNotFound is returned when the client holds no gift under the key.
	ErrGiftNotFound = errors.New("gift not found")
	// ErrDuplicateGift is returned when a gift already exists for (client, key).
	ErrDuplicateGift = errors.New("gift already exists")
	// ErrGiftAlreadyUsed is returned when marking a used gift.
	ErrGiftAlreadyUsed = errors.New("gift already used")
)

// GiftRepository defines partner gift persistence keyed by (client, GiftKey).
type GiftRepository interface {
	// FindGift retrieves a gift without locking it.
	FindGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error)

	// LockGift retrieves a gift and locks it until the transaction ends.
	LockGift(ctx context.Context, clientID uuid.UUID, key entity.GiftKey) (*entity.Gift, error)

	// CreateGift persists a new gift. It fails with ErrDuplicateGift if (client, key) exists.
	CreateGift(ctx context.Context, gift *entity.Gift) error

	// MarkGiftUsed flips an unused gift to used. It never flips it back.
	MarkGiftUsed(ctx context.Context, clientID uuid.UUID, key entity.GiftKey, usedAt time.Time) error

	// FindGiftsByClient retrieves all gifts of a client, newest first.
	FindGiftsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Gift, error)
}
