package loyalty

import (
	"testing"
	"time"

	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() entity.ShopRuleConfig {
	return entity.ShopRuleConfig{
		NewClientPoints:      10,
		StandardClientPoints: 5,
		VIPClientPoints:      8,
		VIPVisitThreshold:    3,
		VIPActive:            true,
		CooldownSeconds:      3600,
		NFCTagIDs:            []string{"tag-1"},
	}
}

func TestEvaluateVisit(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rules := testRules()
	vipOff := testRules()
	vipOff.VIPActive = false

	tests := []struct {
		name     string
		rules    entity.ShopRuleConfig
		existing *entity.Registration
		want     VisitDecision
	}{
		{"first scan", rules, nil, VisitDecision{Tier: entity.TierNew, Points: 10}},
		{"standard", rules, &entity.Registration{NbVisit: 2, LastVisit: now.Add(-2 * time.Hour)}, VisitDecision{Tier: entity.TierStandard, Points: 5}},
		{"vip at threshold", rules, &entity.Registration{NbVisit: 3, LastVisit: now.Add(-2 * time.Hour)}, VisitDecision{Tier: entity.TierVIP, Points: 8}},
		{"vip disabled", vipOff, &entity.Registration{NbVisit: 10, LastVisit: now.Add(-2 * time.Hour)}, VisitDecision{Tier: entity.TierStandard, Points: 5}},
		{"cooldown exactly elapsed", rules, &entity.Registration{NbVisit: 1, LastVisit: now.Add(-time.Hour)}, VisitDecision{Tier: entity.TierStandard, Points: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateVisit(tt.rules, tt.existing, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateVisit_CooldownActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-10 * time.Minute)

	_, err := EvaluateVisit(testRules(), &entity.Registration{NbVisit: 1, LastVisit: last}, now)

	cooldownErr, ok := errors.AsType[*domainerrors.CooldownActiveError](err)
	require.True(t, ok)
	assert.Equal(t, last.Add(time.Hour), cooldownErr.RetryAt())
}

func TestEvaluateVisit_DefaultCooldown(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rules := testRules()
	rules.CooldownSeconds = 0

	_, err := EvaluateVisit(rules, &entity.Registration{LastVisit: now.Add(-29 * time.Minute)}, now)
	require.Error(t, err)

	_, err = EvaluateVisit(rules, &entity.Registration{LastVisit: now.Add(-30 * time.Minute)}, now)
	require.NoError(t, err)
}
