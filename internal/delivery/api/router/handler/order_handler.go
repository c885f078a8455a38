package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"pickup/internal/delivery/api/response"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	"pickup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	LookupUC usecase.OrderLookupUsecase
	Notifier usecase.StatusNotifier
	Logger   *slog.Logger
}

// OrderHandler serves order tracking for guests and signed-in customers
type OrderHandler struct {
	lookupUC usecase.OrderLookupUsecase
	notifier usecase.StatusNotifier
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		lookupUC: params.LookupUC,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// CancelGuestOrderRequest represents the request body for a guest cancellation
type CancelGuestOrderRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// GetGuestOrder looks up an order by number and the phone it was placed with
func (h *OrderHandler) GetGuestOrder(c echo.Context) error {
	phone := strings.TrimSpace(c.QueryParam("phone"))
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "phone is required")
	}

	order, err := h.lookupUC.LookupGuestOrder(c.Request().Context(), c.Param("orderNumber"), phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PollGuestOrder refetches a guest order and reports a status change since the viewer's last poll
func (h *OrderHandler) PollGuestOrder(c echo.Context) error {
	phone := strings.TrimSpace(c.QueryParam("phone"))
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "phone is required")
	}

	viewerID := strings.TrimSpace(c.Request().Header.Get(HeaderViewerID))
	if viewerID == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", HeaderViewerID+" header is required")
	}

	orderNumber := c.Param("orderNumber")
	result, err := h.notifier.Poll(c.Request().Context(), viewerID, orderNumber, func(ctx context.Context) (*entity.Order, error) {
		return h.lookupUC.LookupGuestOrder(ctx, orderNumber, phone)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CancelGuestOrder cancels a guest order that has not been prepared yet
func (h *OrderHandler) CancelGuestOrder(c echo.Context) error {
	var req CancelGuestOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "phone is required")
	}

	order, err := h.lookupUC.CancelGuestOrder(c.Request().Context(), c.Param("orderNumber"), req.Phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetPickupQR renders the pickup QR code of a guest order as PNG
func (h *OrderHandler) GetPickupQR(c echo.Context) error {
	phone := strings.TrimSpace(c.QueryParam("phone"))
	if phone == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "phone is required")
	}

	png, err := h.lookupUC.GeneratePickupQR(c.Request().Context(), c.Param("orderNumber"), phone)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetMyOrder looks up an order of the signed-in customer
func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	order, err := h.lookupUC.LookupCustomerOrder(c.Request().Context(), c.Param("orderNumber"), session.CustomerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PollMyOrder is PollGuestOrder for the signed-in customer. Without a viewer header the
// customer is treated as a single viewer.
func (h *OrderHandler) PollMyOrder(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	viewerID := strings.TrimSpace(c.Request().Header.Get(HeaderViewerID))
	if viewerID == "" {
		viewerID = "customer:" + session.CustomerID.String()
	}

	orderNumber := c.Param("orderNumber")
	result, err := h.notifier.Poll(c.Request().Context(), viewerID, orderNumber, func(ctx context.Context) (*entity.Order, error) {
		return h.lookupUC.LookupCustomerOrder(ctx, orderNumber, session.CustomerID)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// CancelMyOrder cancels an order of the signed-in customer
func (h *OrderHandler) CancelMyOrder(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	order, err := h.lookupUC.CancelCustomerOrder(c.Request().Context(), c.Param("orderNumber"), session.CustomerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
