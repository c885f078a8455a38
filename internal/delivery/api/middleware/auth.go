// Package middleware contains the echo middleware of the public API.
package middleware

import (
	"strings"

	"pickup/internal/delivery/api/response"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer token and stores its session on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		session, ok := m.resolve(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// OptionalAuthenticate attaches a session when a valid bearer token is present and lets
// anonymous requests through. A present but invalid token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		session, ok := m.resolve(authHeader)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// RequireRole checks that the session carries role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: session missing")
			}

			if !session.HasRole(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+string(role)+"' role")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(authHeader string) (*entity.Session, bool) {
	tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
	if !found || tokenString == "" {
		return nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}

	customerID, err := claims.CustomerID()
	if err != nil {
		return nil, false
	}

	return entity.NewSession(customerID, claims.Roles), true
}
