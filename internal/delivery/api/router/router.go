// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/entity"
	"loyalty/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ScanHandler       *handler.ScanHandler
	RedemptionHandler *handler.RedemptionHandler
	WalletHandler     *handler.WalletHandler
	ShopHandler       *handler.ShopHandler
	ClientHandler     *handler.ClientHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Prometheus
}

// router holds all the handlers that need to be registered.
type router struct {
	scanHandler       *handler.ScanHandler
	redemptionHandler *handler.RedemptionHandler
	walletHandler     *handler.WalletHandler
	shopHandler       *handler.ShopHandler
	clientHandler     *handler.ClientHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Prometheus
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		scanHandler:       params.ScanHandler,
		redemptionHandler: params.RedemptionHandler,
		walletHandler:     params.WalletHandler,
		shopHandler:       params.ShopHandler,
		clientHandler:     params.ClientHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.POST("/tags/resolve", r.scanHandler.ResolveTag)
	apiV1.POST("/scans", r.scanHandler.ScanTag)

	shopsGroup := apiV1.Group("/shops/:shopId")
	{
		shopsGroup.POST("/scans", r.scanHandler.RecordScan)
		shopsGroup.POST("/redemptions", r.redemptionHandler.ConfirmRedemption)
		shopsGroup.GET("/rewards", r.shopHandler.ListRewards)
		shopsGroup.GET("/tags/:tagId/qr", r.shopHandler.TagQR, r.authMiddleware.RequireRole(entity.RoleMerchant))
	}

	walletGroup := apiV1.Group("/wallet")
	{
		walletGroup.GET("/registrations", r.walletHandler.ListRegistrations)
		walletGroup.GET("/registrations/:shopId", r.walletHandler.GetRegistration)
		walletGroup.GET("/gifts", r.walletHandler.ListGifts)
		walletGroup.GET("/redemptions", r.walletHandler.ListRedemptions)
		walletGroup.GET("/visits", r.walletHandler.ListVisits)
		walletGroup.GET("/stream", r.walletHandler.Stream)
	}

	apiV1.GET("/profile", r.clientHandler.GetProfile)
	apiV1.PUT("/profile", r.clientHandler.UpdateProfile)
	apiV1.POST("/devices", r.clientHandler.RegisterDevice)
}
