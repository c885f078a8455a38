package handler

import (
	"log/slog"
	"net/http"

	"pickup/internal/delivery/api/response"
	"pickup/internal/delivery/api/validator"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	"pickup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MerchantHandlerParams holds dependencies for MerchantHandler, injected by Fx.
type MerchantHandlerParams struct {
	fx.In

	StatusUC usecase.OrderStatusUsecase
	Logger   *slog.Logger
}

// MerchantHandler serves the merchant side of the order lifecycle
type MerchantHandler struct {
	statusUC usecase.OrderStatusUsecase
	logger   *slog.Logger
}

// NewMerchantHandler is the constructor for MerchantHandler
func NewMerchantHandler(params MerchantHandlerParams) *MerchantHandler {
	return &MerchantHandler{
		statusUC: params.StatusUC,
		logger:   params.Logger,
	}
}

// TransitionRequest represents the request body for a status change
type TransitionRequest struct {
	Status string  `json:"status" validate:"required"`
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

// PaymentStatusRequest represents the status reported by the payment collaborator
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

// ScanPickupRequest carries the raw content of a scanned pickup QR code
type ScanPickupRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// ListStoreOrders returns a store's order queue, optionally filtered by status
func (h *MerchantHandler) ListStoreOrders(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		if !s.IsValid() {
			return response.BadRequest(c, "INVALID_ORDER_STATUS", "Invalid order status")
		}
		status = &s
	}

	orders, err := h.statusUC.ListStoreOrders(c.Request().Context(), store, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// TransitionOrder moves an order to another status
func (h *MerchantHandler) TransitionOrder(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid transition input", validator.Details(err))
	}

	order, err := h.statusUC.TransitionOrder(c.Request().Context(), &usecase.TransitionInput{
		OrderID:   orderID,
		Status:    entity.OrderStatus(req.Status),
		Reason:    req.Reason,
		ChangedBy: merchantActor(session),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdatePaymentStatus records the payment collaborator's status on an order
func (h *MerchantHandler) UpdatePaymentStatus(c echo.Context) error {
	orderID, ok := parseUUIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req PaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid payment status input", validator.Details(err))
	}

	order, err := h.statusUC.UpdatePaymentStatus(c.Request().Context(), orderID, entity.PaymentStatus(req.PaymentStatus))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ScanPickup completes the order shown on a customer's pickup QR code
func (h *MerchantHandler) ScanPickup(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req ScanPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid pickup scan input", validator.Details(err))
	}

	order, err := h.statusUC.CompletePickup(c.Request().Context(), req.QRData, merchantActor(session))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

func merchantActor(session *entity.Session) string {
	return "merchant:" + session.CustomerID.String()
}
