package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"pickup/config"
	"pickup/internal/delivery"
	apimiddleware "pickup/internal/delivery/api/middleware"
	"pickup/internal/delivery/api/router"
	"pickup/internal/delivery/api/router/handler"
	"pickup/internal/delivery/api/validator"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/delivery/middleware"
	"pickup/internal/domain/lifecycle"
	"pickup/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// pickupServer serves the storefront, order tracking and merchant APIs.
type pickupServer struct {
	cfg    *config.Config
	logger *slog.Logger
	echo   *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo instance with the middleware chain and all routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Cfg.HTTP.Port == 0 {
		return nil, errors.New("http.port is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Order matters: panics are recovered first, and the request id must exist before
	// the request logger runs.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.CORSWithConfig(corsConfig()))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	srv := &pickupServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		echo:   e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// corsConfig lets browser storefronts send the cart, viewer and idempotency headers.
func corsConfig() echomiddleware.CORSConfig {
	return echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			handler.HeaderCartToken,
			handler.HeaderViewerID,
			handler.HeaderIdempotencyKey,
		},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}
}

func (s *pickupServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting pickup API server",
		slog.String("host_port", hostPort),
		slog.Int("routes", len(s.echo.Routes())),
		slog.Bool("test_routes", s.cfg.TestRoutes != nil && s.cfg.TestRoutes.Enabled))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.echo.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *pickupServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down pickup API server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
