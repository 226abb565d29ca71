package loyalty

import (
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
)

// VisitDecision is the outcome of a scan that passed the cooldown check.
type VisitDecision struct {
	Tier   entity.Tier
	Points int
}

// EvaluateVisit classifies a scan and returns the points it earns.
// A scan inside the cooldown window fails with *errors.CooldownActiveError.
func EvaluateVisit(rules entity.ShopRuleConfig, existing *entity.Registration, now time.Time) (VisitDecision, error) {
	if existing == nil {
		return VisitDecision{Tier: entity.TierNew, Points: rules.PointsFor(entity.TierNew)}, nil
	}

	cooldown := rules.Cooldown()
	if now.Sub(existing.LastVisit) < cooldown {
		return VisitDecision{}, domainerrors.NewCooldownActiveError(existing.LastVisit.Add(cooldown))
	}

	tier := entity.TierStandard
	if rules.VIPActive && existing.NbVisit >= rules.VIPVisitThreshold {
		tier = entity.TierVIP
	}

	return VisitDecision{Tier: tier, Points: rules.PointsFor(tier)}, nil
}
