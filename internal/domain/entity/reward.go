package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// RewardDefinition is a points-based reward offered by a shop.
type RewardDefinition struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	Points      int       `json:"points"` // Threshold and cost of the reward.
	Value       string    `json:"value"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RewardLadder is the ascending list of a shop's reward definitions.
type RewardLadder []*RewardDefinition

// NewRewardLadder returns the definitions ordered ascending by points.
func NewRewardLadder(defs []*RewardDefinition) RewardLadder {
	ladder := make(RewardLadder, 0, len(defs))
	for _, def := range defs {
		if def != nil {
			ladder = append(ladder, def)
		}
	}

	slices.SortStableFunc(ladder, func(a, b *RewardDefinition) int {
		return a.Points - b.Points
	})

	return ladder
}

// Cap returns the highest threshold of the ladder.
// ok is false for an empty ladder, which leaves balances uncapped.
func (l RewardLadder) Cap() (limit int, ok bool) {
	if len(l) == 0 {
		return 0, false
	}

	return l[len(l)-1].Points, true
}

// Find returns the definition with the given id, or nil.
func (l RewardLadder) Find(id uuid.UUID) *RewardDefinition {
	for _, def := range l {
		if def.ID == id {
			return def
		}
	}

	return nil
}
