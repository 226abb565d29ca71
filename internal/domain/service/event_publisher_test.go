package service

import (
	"testing"
	"time"

	"loyalty/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitEvent_RecordConversion(t *testing.T) {
	record := &entity.VisitRecord{
		ID:            uuid.New(),
		ClientID:      uuid.New(),
		ShopID:        uuid.New(),
		Tier:          entity.TierVIP,
		AwardedPoints: 8,
		BalanceAfter:  42,
		VisitedAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	event := NewVisitEvent(record, "req-1")
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, "vip", event.Tier)

	back, err := event.ToRecord()
	require.NoError(t, err)
	assert.Equal(t, record, back)
}

func TestVisitEvent_ToRecordRejectsBadFields(t *testing.T) {
	valid := func() *VisitEvent {
		return &VisitEvent{VisitID: uuid.NewString(), ClientID: uuid.NewString(), ShopID: uuid.NewString(), Tier: "new"}
	}

	tests := []struct {
		name   string
		mutate func(*VisitEvent)
	}{
		{"visit id", func(e *VisitEvent) { e.VisitID = "x" }},
		{"client id", func(e *VisitEvent) { e.ClientID = "" }},
		{"shop id", func(e *VisitEvent) { e.ShopID = "shop" }},
		{"tier", func(e *VisitEvent) { e.Tier = "gold" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := valid()
			tt.mutate(event)
			_, err := event.ToRecord()
			assert.Error(t, err)
		})
	}
}
