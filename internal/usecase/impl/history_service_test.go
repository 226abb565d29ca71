package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVisitEvent(clientID uuid.UUID) *service.VisitEvent {
	return &service.VisitEvent{
		VisitID:       uuid.NewString(),
		ClientID:      clientID.String(),
		ShopID:        uuid.NewString(),
		Tier:          "vip",
		AwardedPoints: 8,
		BalanceAfter:  48,
		VisitedAt:     time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}

func TestHistoryService_AppendVisitIsIdempotent(t *testing.T) {
	store := memory.NewStore()
	history := NewHistoryService(store, testLogger())
	clientID := uuid.New()
	event := validVisitEvent(clientID)

	require.NoError(t, history.AppendVisit(context.Background(), event))
	require.NoError(t, history.AppendVisit(context.Background(), event))

	visits, err := store.NewVisitRepository().FindVisitsByClient(context.Background(), clientID, 10, 0)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, event.VisitID, visits[0].ID.String())
	assert.Equal(t, 48, visits[0].BalanceAfter)
}

func TestHistoryService_RejectsMalformedEvents(t *testing.T) {
	history := NewHistoryService(memory.NewStore(), testLogger())

	tests := map[string]func(e *service.VisitEvent){
		"bad visit id":  func(e *service.VisitEvent) { e.VisitID = "nope" },
		"bad client id": func(e *service.VisitEvent) { e.ClientID = "" },
		"bad shop id":   func(e *service.VisitEvent) { e.ShopID = "shop" },
		"unknown tier":  func(e *service.VisitEvent) { e.Tier = "gold" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			event := validVisitEvent(uuid.New())
			mutate(event)

			err := history.AppendVisit(context.Background(), event)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
