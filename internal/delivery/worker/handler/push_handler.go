// Package handler serves Pub/Sub push deliveries of the visit history worker.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"loyalty/config"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/constants"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
	"loyalty/internal/infra/pubsub"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler appends the visit history carried by Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth bool
	pushAudience   string
	logger         *slog.Logger
	historyUC      usecase.HistoryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	HistoryUC usecase.HistoryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google push subscriptions sign their requests
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.Worker != nil {
		audience = params.Config.Worker.PushAudience
	}

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushAudience:   audience,
		logger:         params.Logger,
		historyUC:      params.HistoryUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// A 503 asks Pub/Sub to redeliver; any other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request(), h.pushAudience); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeVisitEvent()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode visit event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.historyUC.AppendVisit(ctx, event); err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to append visit",
			slog.String("visit_id", event.VisitID),
			slog.Bool("retryable", retryable),
			slog.Any("error", err),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Visit appended", slog.String("visit_id", event.VisitID))

	return c.NoContent(http.StatusOK)
}

// isRetryable reports store outages; malformed events are never redelivered.
func isRetryable(err error) bool {
	_, ok := errors.AsType[*domainerrors.PersistenceError](err)

	return ok
}

// extractRequestID prefers message attributes, then the event, then the request context
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.VisitEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token of a Google Pub/Sub push request.
// Without a configured audience the push endpoint URL is expected.
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
