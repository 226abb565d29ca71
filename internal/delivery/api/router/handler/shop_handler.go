package handler

import (
	"net/http"

	"loyalty/internal/delivery/api/response"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/service"
	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	WalletUC  usecase.WalletUsecase
	TagUC     usecase.TagUsecase
	QRCodeSvc service.QRCodeService
}

// ShopHandler serves read-only shop data
type ShopHandler struct {
	walletUC  usecase.WalletUsecase
	tagUC     usecase.TagUsecase
	qrCodeSvc service.QRCodeService
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		walletUC:  params.WalletUC,
		tagUC:     params.TagUC,
		qrCodeSvc: params.QRCodeSvc,
	}
}

// ListRewards handles GET /shops/:shopId/rewards, ascending by points
func (h *ShopHandler) ListRewards(c echo.Context) error {
	shopID, err := uuidParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ladder, err := h.walletUC.ListRewards(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ladder)
}

// TagQR handles GET /shops/:shopId/tags/:tagId/qr, a printable fallback for
// phones without NFC. The tag must belong to the shop.
func (h *ShopHandler) TagQR(c echo.Context) error {
	shopID, err := uuidParam(c, "shopId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.tagUC.ResolveTag(c.Request().Context(), loyalty.TagPayload{Text: c.Param("tagId")})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if tag.ShopID != shopID {
		return response.HandleAppError(c, domainerrors.ErrInvalidTag)
	}

	png, err := h.qrCodeSvc.GenerateTagQR(tag.TagID)
	if err != nil {
		return err
	}

	c.Response().Header().Set("X-Tag-URI", h.qrCodeSvc.TagURI(tag.TagID))

	return c.Blob(http.StatusOK, "image/png", png)
}
