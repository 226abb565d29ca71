package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
}

// ClientHandler handles profile and device endpoints
type ClientHandler struct {
	clientUC usecase.ClientUsecase
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{clientUC: params.ClientUC}
}

// GetProfile handles GET /profile
func (h *ClientHandler) GetProfile(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.clientUC.GetProfile(c.Request().Context(), clientID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile
func (h *ClientHandler) UpdateProfile(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.ProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.clientUC.UpdateProfile(c.Request().Context(), clientID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// RegisterDevice handles POST /devices
func (h *ClientHandler) RegisterDevice(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeviceInfo
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.clientUC.RegisterDevice(c.Request().Context(), clientID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}
