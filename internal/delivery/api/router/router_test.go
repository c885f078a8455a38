package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pickup/config"
	"pickup/internal/delivery/api/middleware"
	"pickup/internal/delivery/api/router/handler"
	"pickup/internal/delivery/api/validator"
	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/service"
	"pickup/internal/errors"
	mockSvc "pickup/internal/mocks/service"
	mockUC "pickup/internal/mocks/usecase"
	"pickup/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerToken = "customer-token"
	merchantToken = "merchant-token"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// apiFixtures serves the real router, handlers and middleware over mocked use cases.
type apiFixtures struct {
	echo       *echo.Echo
	cartUC     *mockUC.MockCartUsecase
	checkoutUC *mockUC.MockCheckoutUsecase
	lookupUC   *mockUC.MockOrderLookupUsecase
	statusUC   *mockUC.MockOrderStatusUsecase
	notifier   *mockUC.MockStatusNotifier
	customerID uuid.UUID
	merchantID uuid.UUID
}

func newAPIFixtures(t *testing.T, cfg *config.Config) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := apiFixtures{
		echo:       echo.New(),
		cartUC:     mockUC.NewMockCartUsecase(t),
		checkoutUC: mockUC.NewMockCheckoutUsecase(t),
		lookupUC:   mockUC.NewMockOrderLookupUsecase(t),
		statusUC:   mockUC.NewMockOrderStatusUsecase(t),
		notifier:   mockUC.NewMockStatusNotifier(t),
		customerID: uuid.New(),
		merchantID: uuid.New(),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken(customerToken).Return(claimsFor(fx.customerID, "customer"), nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(merchantToken).Return(claimsFor(fx.merchantID, "merchant"), nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("invalid token")).Maybe()

	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: fx.cartUC, Logger: logger}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{CheckoutUC: fx.checkoutUC, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{LookupUC: fx.lookupUC, Notifier: fx.notifier, Logger: logger}),
		MerchantHandler: handler.NewMerchantHandler(handler.MerchantHandlerParams{StatusUC: fx.statusUC, Logger: logger}),
		TestHandler:     handler.NewTestHandler(tokenSvc),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc),
		Config:          cfg,
	})
	r.RegisterRoutes(fx.echo)
	r.RegisterTestRoutes(fx.echo)

	return fx
}

func claimsFor(id uuid.UUID, role string) *service.Claims {
	return &service.Claims{
		Roles:            []string{role},
		RegisteredClaims: jwt.RegisteredClaims{Subject: id.String()},
	}
}

func (fx apiFixtures) do(t *testing.T, method, target string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func bearer(token string) map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + token}
}

func newOrder(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-0A1B2C3D",
		StoreSlug:   "noodle-bar",
		Status:      status,
		FinalAmount: decimal.RequireFromString("210"),
	}
}

func TestHealth(t *testing.T) {
	fx := newAPIFixtures(t, &config.Config{})

	rec, _ := fx.do(t, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartRoutes(t *testing.T) {
	itemID := uuid.New()
	view := &usecase.CartView{StoreSlug: "noodle-bar", Total: decimal.RequireFromString("240"), ItemCount: 2}

	t.Run("guest cart is scoped to the cart token", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.cartUC.EXPECT().
			AddOrIncrement(mock.Anything, "guest:tab-1", "noodle-bar", &usecase.AddCartItemInput{
				ItemID:       itemID,
				Quantity:     2,
				Instructions: "no onion",
			}).
			Return(view, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/cart/items",
			map[string]any{"itemId": itemID, "quantity": 2, "instructions": "no onion"},
			map[string]string{handler.HeaderCartToken: "tab-1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"total":"240"`)
	})

	t.Run("signed-in customer cart is scoped to the customer", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.cartUC.EXPECT().
			GetCart(mock.Anything, "customer:"+fx.customerID.String(), "noodle-bar").
			Return(view, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/stores/noodle-bar/cart", nil, bearer(customerToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token on an optional route is rejected", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, env := fx.do(t, http.MethodGet, "/api/v1/stores/noodle-bar/cart", nil, bearer("forged"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
	})

	t.Run("invalid store slug", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, env := fx.do(t, http.MethodGet, "/api/v1/stores/Noodle_Bar/cart", nil,
			map[string]string{handler.HeaderCartToken: "tab-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("missing owner", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.cartUC.EXPECT().
			GetCart(mock.Anything, "", "noodle-bar").
			Return(nil, domainerrors.ErrCartOwnerRequired).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/stores/noodle-bar/cart", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CART_OWNER_REQUIRED", env.Error.Code)
	})

	t.Run("zero quantity is passed through to remove the line", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.cartUC.EXPECT().
			SetQuantity(mock.Anything, "guest:tab-1", "noodle-bar", itemID, 0).
			Return(&usecase.CartView{StoreSlug: "noodle-bar"}, nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/v1/stores/noodle-bar/cart/items/"+itemID.String(),
			map[string]any{"quantity": 0},
			map[string]string{handler.HeaderCartToken: "tab-1"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clear cart", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.cartUC.EXPECT().ClearCart(mock.Anything, "guest:tab-1", "noodle-bar").Return(nil).Once()

		rec, _ := fx.do(t, http.MethodDelete, "/api/v1/stores/noodle-bar/cart", nil,
			map[string]string{handler.HeaderCartToken: "tab-1"})

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCheckoutRoute(t *testing.T) {
	t.Run("guest checkout returns the order number", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		order := newOrder(entity.OrderStatusPending)
		fx.checkoutUC.EXPECT().
			Checkout(mock.Anything, "guest:tab-1", "noodle-bar",
				mock.MatchedBy(func(input *usecase.CheckoutInput) bool {
					return input.Contact.Name == "Mei" &&
						input.Contact.Phone == "0912345678" &&
						input.IdempotencyKey == "key-1"
				}),
				(*entity.Session)(nil)).
			Return(&usecase.CheckoutResult{OrderNumber: order.OrderNumber, Order: order}, nil).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/checkout",
			map[string]any{"name": "Mei", "phone": "0912345678"},
			map[string]string{handler.HeaderCartToken: "tab-1", handler.HeaderIdempotencyKey: "key-1"})

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"order_number":"ORD-20260301-0A1B2C3D"`)
	})

	t.Run("customer checkout carries the session", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		order := newOrder(entity.OrderStatusPending)
		fx.checkoutUC.EXPECT().
			Checkout(mock.Anything, "customer:"+fx.customerID.String(), "noodle-bar", mock.Anything,
				mock.MatchedBy(func(session *entity.Session) bool {
					return session != nil && session.CustomerID == fx.customerID
				})).
			Return(&usecase.CheckoutResult{OrderNumber: order.OrderNumber, Order: order}, nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/checkout",
			map[string]any{"name": "Mei", "phone": "0912345678"}, bearer(customerToken))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("empty cart", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.checkoutUC.EXPECT().
			Checkout(mock.Anything, "guest:tab-1", "noodle-bar", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmptyCart).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/checkout",
			map[string]any{"name": "Mei", "phone": "0912345678"},
			map[string]string{handler.HeaderCartToken: "tab-1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMPTY_CART", env.Error.Code)
	})

	t.Run("reused idempotency key", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.checkoutUC.EXPECT().
			Checkout(mock.Anything, "guest:tab-1", "noodle-bar", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrIdempotencyKeyReused).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/checkout",
			map[string]any{"name": "Mei", "phone": "0912345678"},
			map[string]string{handler.HeaderCartToken: "tab-1", handler.HeaderIdempotencyKey: "k1"})

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "IDEMPOTENCY_KEY_REUSED", env.Error.Code)
		assert.Empty(t, env.Data)
	})

	t.Run("backend unavailable after retries", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.checkoutUC.EXPECT().
			Checkout(mock.Anything, "guest:tab-1", "noodle-bar", mock.Anything, mock.Anything).
			Return(nil, errors.Mark(context.DeadlineExceeded, domainerrors.ErrTransientBackend)).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/stores/noodle-bar/checkout",
			map[string]any{"name": "Mei", "phone": "0912345678"},
			map[string]string{handler.HeaderCartToken: "tab-1"})

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "TRANSIENT_BACKEND", env.Error.Code)
	})
}

func TestGuestOrderRoutes(t *testing.T) {
	const number = "ORD-20260301-0A1B2C3D"

	t.Run("lookup", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().LookupGuestOrder(mock.Anything, number, "0912345678").
			Return(newOrder(entity.OrderStatusAccepted), nil).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"?phone=0912345678", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"accepted"`)
	})

	t.Run("phone mismatch looks like a missing order", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().LookupGuestOrder(mock.Anything, number, "0987654321").
			Return(nil, domainerrors.ErrPhoneMismatch).Once()
		fx.lookupUC.EXPECT().LookupGuestOrder(mock.Anything, "ORD-20260301-FFFFFFFF", "0987654321").
			Return(nil, domainerrors.ErrOrderNotFound).Once()

		mismatch, mismatchEnv := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"?phone=0987654321", nil, nil)
		missing, missingEnv := fx.do(t, http.MethodGet, "/api/v1/orders/ORD-20260301-FFFFFFFF?phone=0987654321", nil, nil)

		assert.Equal(t, http.StatusNotFound, mismatch.Code)
		assert.Equal(t, missing.Code, mismatch.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", mismatchEnv.Error.Code)
		assert.Equal(t, *missingEnv.Error, *mismatchEnv.Error)
		assert.Empty(t, mismatchEnv.Data)
	})

	t.Run("timeout is shown as not found", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().LookupGuestOrder(mock.Anything, number, "0912345678").
			Return(nil, domainerrors.ErrLookupTimeout).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"?phone=0912345678", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
	})

	t.Run("phone is required", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/orders/"+number, nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("poll fetches through the guest lookup", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		order := newOrder(entity.OrderStatusReady)
		fx.lookupUC.EXPECT().LookupGuestOrder(mock.Anything, number, "0912345678").Return(order, nil).Once()
		fx.notifier.EXPECT().
			Poll(mock.Anything, "tab-7", number, mock.Anything).
			RunAndReturn(func(ctx context.Context, _ string, _ string, fetch usecase.OrderFetcher) (*usecase.PollResult, error) {
				fetched, err := fetch(ctx)
				if err != nil {
					return nil, err
				}

				return &usecase.PollResult{Order: fetched}, nil
			}).Once()

		rec, env := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"/poll?phone=0912345678", nil,
			map[string]string{handler.HeaderViewerID: "tab-7"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"status":"ready"`)
	})

	t.Run("poll needs a viewer", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"/poll?phone=0912345678", nil, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cancel", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().CancelGuestOrder(mock.Anything, number, "0912345678").
			Return(newOrder(entity.OrderStatusCanceled), nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/v1/orders/"+number+"/cancel",
			map[string]string{"phone": "0912345678"}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pickup QR is a PNG", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		png := []byte{0x89, 0x50, 0x4E, 0x47}
		fx.lookupUC.EXPECT().GeneratePickupQR(mock.Anything, number, "0912345678").Return(png, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/orders/"+number+"/qr?phone=0912345678", nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})
}

func TestCustomerOrderRoutes(t *testing.T) {
	const number = "ORD-20260301-0A1B2C3D"

	t.Run("requires a session", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, env := fx.do(t, http.MethodGet, "/api/v1/me/orders/"+number, nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	})

	t.Run("another customer's order is forbidden", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().LookupCustomerOrder(mock.Anything, number, fx.customerID).
			Return(nil, domainerrors.ErrForbidden).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/me/orders/"+number, nil, bearer(customerToken))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("poll defaults the viewer to the customer", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.notifier.EXPECT().
			Poll(mock.Anything, "customer:"+fx.customerID.String(), number, mock.Anything).
			Return(&usecase.PollResult{Order: newOrder(entity.OrderStatusPreparing)}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/me/orders/"+number+"/poll", nil, bearer(customerToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("cancel after ready is illegal", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.lookupUC.EXPECT().CancelCustomerOrder(mock.Anything, number, fx.customerID).
			Return(nil, domainerrors.ErrIllegalTransition.WithDetails("ready -> canceled")).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/me/orders/"+number+"/cancel", nil, bearer(customerToken))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ILLEGAL_TRANSITION", env.Error.Code)
	})
}

func TestMerchantRoutes(t *testing.T) {
	orderID := uuid.New()

	t.Run("customers are not merchants", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/merchant/stores/noodle-bar/orders", nil, bearer(customerToken))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list with status filter", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		pending := entity.OrderStatusPending
		fx.statusUC.EXPECT().ListStoreOrders(mock.Anything, "noodle-bar", &pending).
			Return([]*entity.Order{newOrder(pending)}, nil).Once()

		rec, _ := fx.do(t, http.MethodGet, "/api/v1/merchant/stores/noodle-bar/orders?status=pending", nil, bearer(merchantToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, env := fx.do(t, http.MethodGet, "/api/v1/merchant/stores/noodle-bar/orders?status=lost", nil, bearer(merchantToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ORDER_STATUS", env.Error.Code)
	})

	t.Run("transition records the merchant", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.statusUC.EXPECT().
			TransitionOrder(mock.Anything, &usecase.TransitionInput{
				OrderID:   orderID,
				Status:    entity.OrderStatusAccepted,
				ChangedBy: "merchant:" + fx.merchantID.String(),
			}).
			Return(newOrder(entity.OrderStatusAccepted), nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/v1/merchant/orders/"+orderID.String()+"/transitions",
			map[string]any{"status": "accepted"}, bearer(merchantToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("illegal transition", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.statusUC.EXPECT().TransitionOrder(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrIllegalTransition).Once()

		rec, env := fx.do(t, http.MethodPost, "/api/v1/merchant/orders/"+orderID.String()+"/transitions",
			map[string]any{"status": "ready"}, bearer(merchantToken))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ILLEGAL_TRANSITION", env.Error.Code)
	})

	t.Run("invalid order id", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, _ := fx.do(t, http.MethodPost, "/api/v1/merchant/orders/not-a-uuid/transitions",
			map[string]any{"status": "accepted"}, bearer(merchantToken))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("payment status", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		fx.statusUC.EXPECT().UpdatePaymentStatus(mock.Anything, orderID, entity.PaymentStatusPaid).
			Return(newOrder(entity.OrderStatusAccepted), nil).Once()

		rec, _ := fx.do(t, http.MethodPut, "/api/v1/merchant/orders/"+orderID.String()+"/payment",
			map[string]any{"paymentStatus": "paid"}, bearer(merchantToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pickup scan", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})
		qrData := `{"order_number":"ORD-20260301-0A1B2C3D","type":"pickup"}`
		fx.statusUC.EXPECT().CompletePickup(mock.Anything, qrData, "merchant:"+fx.merchantID.String()).
			Return(newOrder(entity.OrderStatusCompleted), nil).Once()

		rec, _ := fx.do(t, http.MethodPost, "/api/v1/merchant/pickups/scan",
			map[string]any{"qrData": qrData}, bearer(merchantToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTestRoutes(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{})

		rec, _ := fx.do(t, http.MethodGet, "/test/public", nil, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		fx := newAPIFixtures(t, &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: true}})

		rec, _ := fx.do(t, http.MethodGet, "/test/auth", nil, bearer(merchantToken))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
