package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"loyalty/config"
	apimiddleware "loyalty/internal/delivery/api/middleware"
	"loyalty/internal/delivery/api/router"
	"loyalty/internal/delivery/api/router/handler"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"
	"loyalty/internal/domain/loyalty"
	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
	"loyalty/internal/infra/metrics"
	mockSvc "loyalty/internal/mocks/service"
	mockUC "loyalty/internal/mocks/usecase"
	"loyalty/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	clientToken   = "client-token"
	merchantToken = "merchant-token"
)

type apiFixtures struct {
	echo        *echo.Echo
	clientID    uuid.UUID
	tags        *mockUC.MockTagUsecase
	scans       *mockUC.MockScanUsecase
	redemptions *mockUC.MockRedemptionUsecase
	wallet      *mockUC.MockWalletUsecase
	clients     *mockUC.MockClientUsecase
	qr          *mockSvc.MockQRCodeService
}

func createTestAPI(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fx := &apiFixtures{
		clientID:    uuid.New(),
		tags:        mockUC.NewMockTagUsecase(t),
		scans:       mockUC.NewMockScanUsecase(t),
		redemptions: mockUC.NewMockRedemptionUsecase(t),
		wallet:      mockUC.NewMockWalletUsecase(t),
		clients:     mockUC.NewMockClientUsecase(t),
		qr:          mockSvc.NewMockQRCodeService(t),
	}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(clientToken).
		Return(&service.Claims{UserID: fx.clientID, Roles: []string{"client"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(merchantToken).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"client", "merchant"}}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("token is expired")).Maybe()

	fx.echo = NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger))
	router.NewRouter(router.RouterParams{
		ScanHandler: handler.NewScanHandler(handler.ScanHandlerParams{
			TagUC: fx.tags, ScanUC: fx.scans, Logger: logger,
		}),
		RedemptionHandler: handler.NewRedemptionHandler(handler.RedemptionHandlerParams{RedemptionUC: fx.redemptions}),
		WalletHandler:     handler.NewWalletHandler(handler.WalletHandlerParams{WalletUC: fx.wallet, Logger: logger}),
		ShopHandler: handler.NewShopHandler(handler.ShopHandlerParams{
			WalletUC: fx.wallet, TagUC: fx.tags, QRCodeSvc: fx.qr,
		}),
		ClientHandler:  handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: fx.clients}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens, logger),
		Metrics:        metrics.NewPrometheus(),
	}).RegisterRoutes(fx.echo)

	return fx
}

func (fx *apiFixtures) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = fx.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestAPI_RequiresBearerToken(t *testing.T) {
	fx := createTestAPI(t)

	for name, token := range map[string]string{"missing": "", "invalid": "forged"} {
		t.Run(name, func(t *testing.T) {
			rec := fx.do(http.MethodGet, "/api/v1/wallet/gifts", token, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAPI_RecordScan(t *testing.T) {
	fx := createTestAPI(t)
	shopID := uuid.New()

	fx.scans.EXPECT().RecordScan(mock.Anything, fx.clientID, shopID).Return(&usecase.ScanResult{
		ShopID:        shopID,
		Tier:          entity.TierNew,
		AwardedPoints: 10,
		NewBalance:    10,
		NbVisit:       1,
	}, nil).Once()

	rec := fx.do(http.MethodPost, "/api/v1/shops/"+shopID.String()+"/scans", clientToken, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data usecase.ScanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 10, body.Data.NewBalance)
	assert.Equal(t, entity.TierNew, body.Data.Tier)
}

func TestAPI_ScanCooldown(t *testing.T) {
	fx := createTestAPI(t)
	shopID := uuid.New()
	retryAt := time.Now().Add(90 * time.Second)

	fx.scans.EXPECT().RecordScan(mock.Anything, fx.clientID, shopID).
		Return(nil, domainerrors.NewCooldownActiveError(retryAt)).Once()

	rec := fx.do(http.MethodPost, "/api/v1/shops/"+shopID.String()+"/scans", clientToken, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	body := decodeError(t, rec)
	assert.Equal(t, "COOLDOWN_ACTIVE", body.Error.Code)
	assert.Contains(t, body.Error.Details, "retry_at")
}

func TestAPI_ScanTagValidatesPayload(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/scans", clientToken, `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)

	fx.scans.EXPECT().ScanTag(mock.Anything, fx.clientID, loyalty.TagPayload{Text: "unknown"}).
		Return(nil, domainerrors.ErrInvalidTag).Once()

	rec = fx.do(http.MethodPost, "/api/v1/scans", clientToken, `{"text":"unknown"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_TAG", decodeError(t, rec).Error.Code)
}

func TestAPI_InvalidShopID(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/shops/not-a-uuid/scans", clientToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_RedemptionErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail any
	}{
		{
			name:       "incomplete profile points to the profile",
			body:       `{"reward_id":"` + uuid.NewString() + `"}`,
			err:        domainerrors.ErrIncompleteProfile,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INCOMPLETE_PROFILE",
			wantDetail: domainerrors.ProfileCompletionPath,
		},
		{
			name:       "gift already used",
			body:       `{"gift_key":"gift_partners_a_b"}`,
			err:        domainerrors.ErrGiftAlreadyUsed,
			wantStatus: http.StatusConflict,
			wantCode:   "GIFT_ALREADY_USED",
		},
		{
			name:       "store unavailable",
			body:       `{"gift_key":"gift_partners_a_b"}`,
			err:        domainerrors.NewPersistenceError(errors.New("connection reset"), "failed to redeem"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "PERSISTENCE_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)
			shopID := uuid.New()

			fx.redemptions.EXPECT().ConfirmRedemption(mock.Anything, fx.clientID, shopID, mock.Anything).
				Return(nil, tt.err).Once()

			rec := fx.do(http.MethodPost, "/api/v1/shops/"+shopID.String()+"/redemptions", clientToken, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetail, body.Error.Details)
		})
	}
}

func TestAPI_RedemptionNeedsExactlyOneTarget(t *testing.T) {
	fx := createTestAPI(t)
	path := "/api/v1/shops/" + uuid.NewString() + "/redemptions"

	for name, body := range map[string]string{
		"none": `{}`,
		"both": `{"reward_id":"` + uuid.NewString() + `","gift_key":"gift_partners_a_b"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := fx.do(http.MethodPost, path, clientToken, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAPI_TagQRRequiresMerchant(t *testing.T) {
	fx := createTestAPI(t)
	shopID := uuid.New()
	path := "/api/v1/shops/" + shopID.String() + "/tags/counter-1/qr"

	rec := fx.do(http.MethodGet, path, clientToken, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	fx.tags.EXPECT().ResolveTag(mock.Anything, loyalty.TagPayload{Text: "counter-1"}).
		Return(&usecase.ResolvedTag{TagID: "counter-1", ShopID: shopID}, nil).Once()
	fx.qr.EXPECT().GenerateTagQR("counter-1").Return([]byte("\x89PNG"), nil).Once()
	fx.qr.EXPECT().TagURI("counter-1").Return("https://loyalty.example.com/t/counter-1").Once()

	rec = fx.do(http.MethodGet, path, merchantToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "https://loyalty.example.com/t/counter-1", rec.Header().Get("X-Tag-URI"))
}

func TestAPI_WalletPaging(t *testing.T) {
	fx := createTestAPI(t)

	fx.wallet.EXPECT().ListVisits(mock.Anything, fx.clientID, 5, 10).Return([]*entity.VisitRecord{}, nil).Once()

	rec := fx.do(http.MethodGet, "/api/v1/wallet/visits?limit=5&offset=10", clientToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/wallet/visits?limit=-1", clientToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// closedSubscription replays buffered changes, then ends.
type closedSubscription struct {
	events chan *entity.BalanceChange
}

func (s *closedSubscription) Events() <-chan *entity.BalanceChange { return s.events }
func (s *closedSubscription) Close() error                        { return nil }

func TestAPI_WalletStream(t *testing.T) {
	fx := createTestAPI(t)
	shopID := uuid.New()

	sub := &closedSubscription{events: make(chan *entity.BalanceChange, 1)}
	sub.events <- &entity.BalanceChange{ClientID: fx.clientID, ShopID: shopID, Points: 15, Reason: entity.ChangeReasonScan}
	close(sub.events)

	fx.wallet.EXPECT().Subscribe(mock.Anything, fx.clientID).Return(sub, nil).Once()

	rec := fx.do(http.MethodGet, "/api/v1/wallet/stream", clientToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), "event: scan\n")
	assert.Contains(t, rec.Body.String(), `"points":15`)
}

func TestAPI_RegisterDeviceValidation(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodPost, "/api/v1/devices", clientToken, `{"fcm_token":"t","device_id":"d","platform":"symbian"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "platform: oneof", decodeError(t, rec).Error.Details)

	fx.clients.EXPECT().RegisterDevice(mock.Anything, fx.clientID, &usecase.DeviceInfo{
		FCMToken: "t", DeviceID: "d", Platform: "ios",
	}).Return(&entity.ClientDevice{ID: uuid.New(), IsActive: true}, nil).Once()

	rec = fx.do(http.MethodPost, "/api/v1/devices", clientToken, `{"fcm_token":"t","device_id":"d","platform":"ios"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
