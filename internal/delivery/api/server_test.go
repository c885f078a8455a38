package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"pickup/config"
	"pickup/internal/delivery/api/router"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) (*pickupServer, error) {
	srv, err := NewServer(ServerParams{
		Lc:           fxtest.NewLifecycle(t),
		Cfg:          cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		RouterParams: router.RouterParams{Config: cfg},
	})
	if err != nil {
		return nil, err
	}

	return srv.(*pickupServer), nil
}

func TestNewServer_RequiresPort(t *testing.T) {
	cfg := newTestServerConfig()
	cfg.HTTP.Port = 0

	_, err := newTestServer(t, cfg)
	assert.Error(t, err)
}

func TestNewServer_CORSAllowsStorefrontHeaders(t *testing.T) {
	srv, err := newTestServer(t, newTestServerConfig())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stores/noodle-bar/checkout", nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	req.Header.Set(echo.HeaderAccessControlRequestHeaders, "X-Cart-Token, Idempotency-Key")
	rec := httptest.NewRecorder()

	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	allowed := rec.Header().Get(echo.HeaderAccessControlAllowHeaders)
	assert.Contains(t, allowed, "X-Cart-Token")
	assert.Contains(t, allowed, "Idempotency-Key")
	assert.Contains(t, allowed, "X-Viewer-Id")
}
