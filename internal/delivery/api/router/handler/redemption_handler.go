package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/domain/entity"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
}

// RedemptionHandler handles reward and gift redemptions
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{redemptionUC: params.RedemptionUC}
}

// ConfirmRedemptionRequest names exactly one of a reward or a gift.
type ConfirmRedemptionRequest struct {
	RewardID *uuid.UUID `json:"reward_id" validate:"required_without=GiftKey,excluded_with=GiftKey"`
	GiftKey  string     `json:"gift_key" validate:"required_without=RewardID,max=128"`
}

// ConfirmRedemption handles POST /shops/:shopId/redemptions. The request is
// the client's single confirmation; it is never replayed by the server.
func (h *RedemptionHandler) ConfirmRedemption(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shopID, err := uuidParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ConfirmRedemptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.redemptionUC.ConfirmRedemption(c.Request().Context(), clientID, shopID, usecase.RedemptionTarget{
		RewardID: req.RewardID,
		GiftKey:  entity.GiftKey(req.GiftKey),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
