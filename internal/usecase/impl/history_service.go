package impl

import (
	"context"
	"log/slog"

	deliverycontext "loyalty/internal/delivery/context"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/repository"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewHistoryService creates a new visit history service instance
func NewHistoryService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.HistoryUsecase {
	return &historyService{
		repos:  repos,
		logger: logger,
	}
}

// AppendVisit validates the event and appends its record. Malformed events
// fail with a validation error and must not be redelivered.
func (s *historyService) AppendVisit(ctx context.Context, event *service.VisitEvent) error {
	record, err := event.ToRecord()
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if err := s.repos.NewVisitRepository().CreateVisit(ctx, record); err != nil {
		return storeError(err, "failed to append visit")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Visit appended",
		slog.String("visit_id", record.ID.String()),
		slog.String("client_id", record.ClientID.String()),
	)

	return nil
}
