package handler

import (
	"log/slog"
	"net/http"

	"pickup/internal/delivery/api/response"
	"pickup/internal/delivery/api/validator"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding an item to the cart
type AddCartItemRequest struct {
	ItemID       uuid.UUID `json:"itemId" validate:"required"`
	Quantity     int       `json:"quantity" validate:"max=999"` // Values below 1 count as 1.
	Instructions string    `json:"instructions" validate:"max=500"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"max=999"` // Values below 1 remove the line.
}

// GetCart returns the cart of a store
func (h *CartHandler) GetCart(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), cartOwner(c), store)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddItem adds an item to the cart or increments its line
func (h *CartHandler) AddItem(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid cart item input", validator.Details(err))
	}

	cart, err := h.cartUC.AddOrIncrement(c.Request().Context(), cartOwner(c), store, &usecase.AddCartItemInput{
		ItemID:       req.ItemID,
		Quantity:     req.Quantity,
		Instructions: req.Instructions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateItem sets the quantity of a cart line
func (h *CartHandler) UpdateItem(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid quantity input", validator.Details(err))
	}

	cart, err := h.cartUC.SetQuantity(c.Request().Context(), cartOwner(c), store, itemID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveItem drops a line from the cart
func (h *CartHandler) RemoveItem(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	itemID, ok := parseUUIDParam(c, "itemId")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), cartOwner(c), store, itemID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// ClearCart empties the cart of a store
func (h *CartHandler) ClearCart(c echo.Context) error {
	store, err := storeSlug(c)
	if err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid store", validator.Details(err))
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), cartOwner(c), store); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
