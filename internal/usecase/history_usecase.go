package usecase

import (
	"context"

	"loyalty/internal/domain/service"
)

// HistoryUsecase appends asynchronous visit history.
type HistoryUsecase interface {
	// AppendVisit stores the record of a visit event. Redelivered events are ignored.
	AppendVisit(ctx context.Context, event *service.VisitEvent) error
}
