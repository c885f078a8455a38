package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pickup/internal/delivery/api/response"
	"pickup/internal/delivery/api/validator"
	"pickup/internal/domain/entity"
	"pickup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler turns a store's cart into an order
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// CheckoutRequest represents the contact and pickup details entered at checkout.
// Name and phone are validated by the checkout use case.
type CheckoutRequest struct {
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`
	MarketingConsent bool       `json:"marketingConsent"`
	PaymentMethod    string     `json:"paymentMethod" validate:"omitempty,max=50"`
	PickupTime       *time.Time `json:"pickupTime"`
	IdempotencyKey   string     `json:"idempotencyKey" validate:"omitempty,max=64"`
}

// Checkout submits the cart of a store and returns the order number
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if req.IdempotencyKey == "" {
		req.IdempotencyKey = strings.TrimSpace(c.Request().Header.Get(HeaderIdempotencyKey))
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid checkout input", validator.Details(err))
	}

	input := &usecase.CheckoutInput{
		Contact: entity.ContactProfile{
			Name:             req.Name,
			Phone:            req.Phone,
			MarketingConsent: req.MarketingConsent,
		},
		PaymentMethod:  req.PaymentMethod,
		PickupTime:     req.PickupTime,
		IdempotencyKey: req.IdempotencyKey,
	}

	// A signed-in customer's id is attached to the contact by the use case.
	result, err := h.checkoutUC.Checkout(c.Request().Context(), cartOwner(c), store, input, optionalSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}
