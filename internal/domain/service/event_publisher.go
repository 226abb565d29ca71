package service

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/errors"

	"github.com/google/uuid"
)

// VisitEvent is published after a scan was recorded. The worker appends it to the visit history.
type VisitEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	VisitID       string    `json:"visit_id"`             // Idempotency key of the history record
	ClientID      string    `json:"client_id"`
	ShopID        string    `json:"shop_id"`
	Tier          string    `json:"tier"`
	AwardedPoints int       `json:"awarded_points"`
	BalanceAfter  int       `json:"balance_after"`
	VisitedAt     time.Time `json:"visited_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// NewVisitEvent builds the event of a recorded visit.
func NewVisitEvent(record *entity.VisitRecord, requestID string) *VisitEvent {
	return &VisitEvent{
		RequestID:     requestID,
		VisitID:       record.ID.String(),
		ClientID:      record.ClientID.String(),
		ShopID:        record.ShopID.String(),
		Tier:          record.Tier.String(),
		AwardedPoints: record.AwardedPoints,
		BalanceAfter:  record.BalanceAfter,
		VisitedAt:     record.VisitedAt,
	}
}

// ToRecord converts the event back into the history record it describes.
func (e *VisitEvent) ToRecord() (*entity.VisitRecord, error) {
	visitID, err := uuid.Parse(e.VisitID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid visit_id")
	}
	clientID, err := uuid.Parse(e.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid client_id")
	}
	shopID, err := uuid.Parse(e.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shop_id")
	}

	tier := entity.Tier(e.Tier)
	if !tier.IsValid() {
		return nil, errors.Errorf("invalid tier: %s", e.Tier)
	}

	return &entity.VisitRecord{
		ID:            visitID,
		ClientID:      clientID,
		ShopID:        shopID,
		Tier:          tier,
		AwardedPoints: e.AwardedPoints,
		BalanceAfter:  e.BalanceAfter,
		VisitedAt:     e.VisitedAt,
	}, nil
}
