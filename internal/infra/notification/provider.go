package notification

import (
	"context"
	"log/slog"

	"loyalty/config"
	"loyalty/internal/domain/service"

	"go.uber.org/fx"
)

// Params holds dependencies for NotificationService, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates the Firebase service, or a no-op one when Firebase is not configured.
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return NewNoopService(params.Logger), nil
	}

	return NewFirebaseService(params.Ctx, params.Config.Firebase)
}
