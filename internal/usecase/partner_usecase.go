package usecase

import (
	"context"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerOutcome is the result of evaluating one partner link for a client.
type PartnerOutcome string

const (
	PartnerOutcomeGranted          PartnerOutcome = "granted"
	PartnerOutcomeAlreadyGranted   PartnerOutcome = "already_granted"
	PartnerOutcomeNotOffered       PartnerOutcome = "not_offered"
	PartnerOutcomeExistingCustomer PartnerOutcome = "existing_customer"
	PartnerOutcomeInconsistent     PartnerOutcome = "inconsistent"
	PartnerOutcomeError            PartnerOutcome = "error"
)

// LinkOutcome reports one link of a propagation run.
type LinkOutcome struct {
	LinkID      uuid.UUID      `json:"link_id"`
	Counterpart uuid.UUID      `json:"counterpart"`
	Key         entity.GiftKey `json:"gift_key,omitempty"`
	Outcome     PartnerOutcome `json:"outcome"`
	Err         error          `json:"-"`
}

// PropagationReport summarises a propagation run.
type PropagationReport struct {
	ClientID uuid.UUID     `json:"client_id"`
	ShopID   uuid.UUID     `json:"shop_id"`
	Links    []LinkOutcome `json:"links"`
}

// Count returns how many links ended with the outcome.
func (r *PropagationReport) Count(outcome PartnerOutcome) int {
	n := 0
	for _, link := range r.Links {
		if link.Outcome == outcome {
			n++
		}
	}

	return n
}

// PartnerUsecase grants partner gifts after a scan.
type PartnerUsecase interface {
	// PropagatePartnerGifts evaluates every confirmed link of the shop for the
	// client. Per-link failures land in the report; only failing to load the
	// links is returned as an error.
	PropagatePartnerGifts(ctx context.Context, clientID, shopID uuid.UUID) (*PropagationReport, error)
}
