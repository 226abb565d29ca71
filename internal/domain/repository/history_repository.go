package repository

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionRepository defines the append-only redemption history.
type RedemptionRepository interface {
	// CreateRedemption appends a redemption record.
	CreateRedemption(ctx context.Context, record *entity.RedemptionRecord) error

	// FindRedemptionsByClient pages through a client's redemptions, newest first.
	FindRedemptionsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.RedemptionRecord, error)
}

// VisitRepository defines the append-only visit history.
type VisitRepository interface {
	// CreateVisit appends a visit record. Records with an existing ID are ignored.
	CreateVisit(ctx context.Context, record *entity.VisitRecord) error

	// FindVisitsByClient pages through a client's visits, newest first.
	FindVisitsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.VisitRecord, error)
}
