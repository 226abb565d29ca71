package notification

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/service"
)

// noopService drops notifications when Firebase is not configured.
type noopService struct {
	logger *slog.Logger
}

// NewNoopService creates a notification service that only logs.
func NewNoopService(logger *slog.Logger) service.NotificationService {
	return &noopService{logger: logger}
}

func (s *noopService) SendSingleNotification(ctx context.Context, token, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "[NoopNotification] Notification disabled, skipping",
		slog.String("title", title),
	)

	return nil
}

func (s *noopService) SendBatchNotification(ctx context.Context, tokens []string, title, _ string, _ map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	s.logger.DebugContext(ctx, "[NoopNotification] Notification disabled, skipping",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, nil, nil
}
