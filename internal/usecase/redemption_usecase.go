package usecase

import (
	"context"

	"loyalty/internal/domain/entity"
	"loyalty/internal/domain/loyalty"

	"github.com/google/uuid"
)

// RedemptionTarget names what is redeemed: a reward of the ladder or a gift.
type RedemptionTarget struct {
	RewardID *uuid.UUID     `json:"reward_id,omitempty"`
	GiftKey  entity.GiftKey `json:"gift_key,omitempty"`
}

// RedemptionResult describes a successful redemption.
type RedemptionResult struct {
	State        loyalty.RedemptionState  `json:"state"`
	Kind         entity.RedemptionKind    `json:"kind"`
	BalanceAfter int                      `json:"balance_after"`
	Record       *entity.RedemptionRecord `json:"record"`
}

// RedemptionUsecase redeems rewards and gifts.
type RedemptionUsecase interface {
	// ConfirmRedemption commits a confirmed redemption. Blocked and rejected
	// outcomes are returned as business errors and change nothing.
	ConfirmRedemption(ctx context.Context, clientID, shopID uuid.UUID, target RedemptionTarget) (*RedemptionResult, error)
}
