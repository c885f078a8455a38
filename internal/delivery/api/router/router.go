// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pickup/config"
	"pickup/internal/delivery/api/middleware"
	"pickup/internal/delivery/api/router/handler"
	"pickup/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	MerchantHandler *handler.MerchantHandler
	TestHandler     *handler.TestHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	merchantHandler *handler.MerchantHandler
	testHandler     *handler.TestHandler
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		merchantHandler: params.MerchantHandler,
		testHandler:     params.TestHandler,
		authMiddleware:  params.AuthMiddleware,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Cart and checkout work for guests (X-Cart-Token) and signed-in customers alike
	storesGroup := apiV1.Group("/stores/:store")
	storesGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		storesGroup.GET("/cart", r.cartHandler.GetCart)
		storesGroup.DELETE("/cart", r.cartHandler.ClearCart)
		storesGroup.POST("/cart/items", r.cartHandler.AddItem)
		storesGroup.PUT("/cart/items/:itemId", r.cartHandler.UpdateItem)
		storesGroup.DELETE("/cart/items/:itemId", r.cartHandler.RemoveItem)
		storesGroup.POST("/checkout", r.checkoutHandler.Checkout)
	}

	// Guest order tracking by order number + phone
	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.GET("/:orderNumber", r.orderHandler.GetGuestOrder)
		ordersGroup.GET("/:orderNumber/poll", r.orderHandler.PollGuestOrder)
		ordersGroup.POST("/:orderNumber/cancel", r.orderHandler.CancelGuestOrder)
		ordersGroup.GET("/:orderNumber/qr", r.orderHandler.GetPickupQR)
	}

	// Signed-in customer order tracking
	meGroup := apiV1.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("/orders/:orderNumber", r.orderHandler.GetMyOrder)
		meGroup.GET("/orders/:orderNumber/poll", r.orderHandler.PollMyOrder)
		meGroup.POST("/orders/:orderNumber/cancel", r.orderHandler.CancelMyOrder)
	}

	// Merchant routes that require authentication and "merchant" role
	merchantGroup := apiV1.Group("/merchant")
	merchantGroup.Use(r.authMiddleware.Authenticate)                     // First, check if logged in
	merchantGroup.Use(r.authMiddleware.RequireRole(entity.RoleMerchant)) // Then, check for the role
	{
		merchantGroup.GET("/stores/:store/orders", r.merchantHandler.ListStoreOrders)
		merchantGroup.POST("/orders/:id/transitions", r.merchantHandler.TransitionOrder)
		merchantGroup.PUT("/orders/:id/payment", r.merchantHandler.UpdatePaymentStatus)
		merchantGroup.POST("/pickups/scan", r.merchantHandler.ScanPickup)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueToken)

		authGroup := testGroup.Group("")
		authGroup.Use(r.authMiddleware.Authenticate)
		{
			authGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
