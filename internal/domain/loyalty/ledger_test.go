package loyalty

import (
	"testing"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLadder(thresholds ...int) entity.RewardLadder {
	defs := make([]*entity.RewardDefinition, 0, len(thresholds))
	for _, points := range thresholds {
		defs = append(defs, &entity.RewardDefinition{ID: uuid.New(), Points: points})
	}

	return entity.NewRewardLadder(defs)
}

func TestApplyVisit_CreatesRegistration(t *testing.T) {
	now := time.Now().UTC()
	clientID, shopID := uuid.New(), uuid.New()
	snapshot := entity.DemographicSnapshot{Name: "Ada"}

	reg := ApplyVisit(nil, clientID, shopID, 10, testLadder(50, 100), snapshot, now)

	require.NotNil(t, reg)
	assert.Equal(t, clientID, reg.ClientID)
	assert.Equal(t, shopID, reg.ShopID)
	assert.Equal(t, 10, reg.Points)
	assert.Equal(t, 1, reg.NbVisit)
	assert.Equal(t, now, reg.LastVisit)
	assert.True(t, reg.NotificationsActive)
	assert.Equal(t, snapshot, reg.Snapshot)
}

func TestApplyVisit_SaturatesAtLadderCap(t *testing.T) {
	now := time.Now().UTC()
	existing := &entity.Registration{Points: 95, NbVisit: 4, Snapshot: entity.DemographicSnapshot{Name: "old"}}

	reg := ApplyVisit(existing, uuid.New(), uuid.New(), 10, testLadder(100, 50), entity.DemographicSnapshot{Name: "new"}, now)

	assert.Equal(t, 100, reg.Points)
	assert.Equal(t, 5, reg.NbVisit)
	assert.Equal(t, "new", reg.Snapshot.Name)
	assert.Equal(t, 95, existing.Points, "input must not be mutated")
}

func TestApplyVisit_FirstScanAboveCap(t *testing.T) {
	reg := ApplyVisit(nil, uuid.New(), uuid.New(), 500, testLadder(100), entity.DemographicSnapshot{}, time.Now())

	assert.Equal(t, 100, reg.Points)
}

func TestCapPoints(t *testing.T) {
	tests := []struct {
		name   string
		points int
		ladder entity.RewardLadder
		want   int
	}{
		{"empty ladder is uncapped", 1000, nil, 1000},
		{"negative floored", -5, testLadder(10), 0},
		{"below cap", 7, testLadder(10, 20), 7},
		{"above cap", 30, testLadder(10, 20), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapPoints(tt.points, tt.ladder))
		})
	}
}
