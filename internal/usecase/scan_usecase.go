// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
)

// ResolvedTag is the shop behind a scanned tag.
type ResolvedTag struct {
	TagID    string                `json:"tag_id"`
	ShopID   uuid.UUID             `json:"shop_id"`
	ShopName string                `json:"shop_name"`
	Rules    entity.ShopRuleConfig `json:"rules"`
}

// TagUsecase resolves NFC tag payloads.
type TagUsecase interface {
	// ResolveTag maps a tag payload to its shop. It has no side effects.
	ResolveTag(ctx context.Context, payload loyalty.TagPayload) (*ResolvedTag, error)
}

// ScanResult describes the outcome of a recorded scan.
type ScanResult struct {
	ShopID        uuid.UUID   `json:"shop_id"`
	Tier          entity.Tier `json:"tier"`
	AwardedPoints int         `json:"awarded_points"`
	NewBalance    int         `json:"new_balance"`
	NbVisit       int         `json:"nb_visit"`
	VisitedAt     time.Time   `json:"visited_at"`
}

// ScanUsecase records client visits at shops.
type ScanUsecase interface {
	// RecordScan evaluates and records a visit. A scan inside the shop's
	// cooldown window fails with a CooldownActiveError and changes nothing.
	RecordScan(ctx context.Context, clientID, shopID uuid.UUID) (*ScanResult, error)

	// ScanTag resolves the tag and records the visit at its shop.
	ScanTag(ctx context.Context, clientID uuid.UUID, payload loyalty.TagPayload) (*ScanResult, error)
}
