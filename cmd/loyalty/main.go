package main

import (
	"context"
	"log/slog"
	"os"

	"loyalty/config"
	"loyalty/internal/delivery"
	"loyalty/internal/delivery/api"
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/service"
	"loyalty/internal/infra/auth"
	"loyalty/internal/infra/feed"
	logs "loyalty/internal/infra/log"
	"loyalty/internal/infra/metrics"
	"loyalty/internal/infra/notification"
	"loyalty/internal/infra/persistence"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/infra/qrcode"
	"loyalty/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRSize  = 256
	defaultQRLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.NewStore,
		feed.NewChangeFeed,
		metrics.NewPrometheus,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			metrics.NewMetrics,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRSize, defaultQRLevel, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTagService,
			impl.NewPartnerService,
			impl.NewScanService,
			impl.NewRedemptionService,
			impl.NewWalletService,
			impl.NewClientService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewScanHandler,
			handler.NewRedemptionHandler,
			handler.NewWalletHandler,
			handler.NewShopHandler,
			handler.NewClientHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
