package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"loyalty/internal/delivery/api/response"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const streamHeartbeat = 15 * time.Second

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler serves the client's cards, gifts and history
type WalletHandler struct {
	walletUC  usecase.WalletUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC:  params.WalletUC,
		logger:    params.Logger,
		heartbeat: streamHeartbeat,
	}
}

// ListRegistrations handles GET /wallet/registrations
func (h *WalletHandler) ListRegistrations(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	regs, err := h.walletUC.ListRegistrations(c.Request().Context(), clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regs)
}

// GetRegistration handles GET /wallet/registrations/:shopId
func (h *WalletHandler) GetRegistration(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shopID, err := uuidParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	reg, err := h.walletUC.GetRegistration(c.Request().Context(), clientID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reg)
}

// ListGifts handles GET /wallet/gifts
func (h *WalletHandler) ListGifts(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	gifts, err := h.walletUC.ListGifts(c.Request().Context(), clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gifts)
}

// ListRedemptions handles GET /wallet/redemptions?limit=&offset=
func (h *WalletHandler) ListRedemptions(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.walletUC.ListRedemptions(c.Request().Context(), clientID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// ListVisits handles GET /wallet/visits?limit=&offset=
func (h *WalletHandler) ListVisits(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, offset, err := pageParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	visits, err := h.walletUC.ListVisits(c.Request().Context(), clientID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, visits)
}

// Stream handles GET /wallet/stream as server-sent events of balance changes.
// The subscription lives exactly as long as the request.
func (h *WalletHandler) Stream(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	sub, err := h.walletUC.Subscribe(ctx, clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer sub.Close()

	res := c.Response()
	// The stream outlives the server write timeout.
	_ = http.NewResponseController(res).SetWriteDeadline(time.Time{})
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case change, open := <-sub.Events():
			if !open {
				return nil
			}
			if err := writeChangeEvent(res, change); err != nil {
				logger.Debug("Stream closed by client", slog.Any("error", err))

				return nil
			}
			res.Flush()
		}
	}
}

func writeChangeEvent(res *echo.Response, change *entity.BalanceChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", change.Reason, data)

	return err
}
