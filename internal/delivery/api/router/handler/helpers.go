package handler

import (
	"strings"

	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderCartToken identifies the cart of an anonymous visitor.
	HeaderCartToken = "X-Cart-Token"
	// HeaderViewerID identifies one browser tab or device polling an order.
	HeaderViewerID = "X-Viewer-Id"
	// HeaderIdempotencyKey lets a client pin the submission key of a checkout.
	HeaderIdempotencyKey = "Idempotency-Key"
)

type storePath struct {
	Store string `validate:"required,slug"`
}

// storeSlug returns the validated :store path parameter.
func storeSlug(c echo.Context) (string, error) {
	path := storePath{Store: c.Param("store")}
	if err := c.Validate(&path); err != nil {
		return "", err
	}

	return path.Store, nil
}

// cartOwner scopes a cart to the signed-in customer, or to the anonymous cart token.
// An empty owner is rejected by the cart use cases.
func cartOwner(c echo.Context) string {
	if session, ok := deliverycontext.GetSession(c); ok {
		return "customer:" + session.CustomerID.String()
	}

	token := strings.TrimSpace(c.Request().Header.Get(HeaderCartToken))
	if token == "" {
		return ""
	}

	return "guest:" + token
}

// optionalSession returns the session when the request was authenticated, else nil.
func optionalSession(c echo.Context) *entity.Session {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil
	}

	return session
}

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
