package handler

import (
	"log/slog"
	"net/http"

	"loyalty/internal/delivery/api/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	TagUC  usecase.TagUsecase
	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// ScanHandler holds dependencies for tag and scan handlers
type ScanHandler struct {
	tagUC  usecase.TagUsecase
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		tagUC:  params.TagUC,
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

// TagPayloadRequest is what the app read from the tag: a decoded text or URI,
// or the raw NDEF message (base64 in JSON).
type TagPayloadRequest struct {
	Text string `json:"text" validate:"max=2048"`
	NDEF []byte `json:"ndef" validate:"max=8192"`
}

func (r *TagPayloadRequest) payload() (loyalty.TagPayload, error) {
	if r.Text == "" && len(r.NDEF) == 0 {
		return loyalty.TagPayload{}, domainerrors.ErrValidationFailed.WithDetails("text or ndef is required")
	}

	return loyalty.TagPayload{Text: r.Text, NDEF: r.NDEF}, nil
}

// ResolveTag handles POST /tags/resolve
func (h *ScanHandler) ResolveTag(c echo.Context) error {
	var req TagPayloadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	payload, err := req.payload()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.tagUC.ResolveTag(c.Request().Context(), payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tag)
}

// ScanTag handles POST /scans, resolving the tag and recording the visit in one call
func (h *ScanHandler) ScanTag(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TagPayloadRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	payload, err := req.payload()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.scanUC.ScanTag(c.Request().Context(), clientID, payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// RecordScan handles POST /shops/:shopId/scans
func (h *ScanHandler) RecordScan(c echo.Context) error {
	clientID, err := requireClient(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shopID, err := uuidParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.scanUC.RecordScan(c.Request().Context(), clientID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
