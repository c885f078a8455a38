package handler

import (
	"net/http"

	"pickup/internal/delivery/api/response"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{tokenSvc: tokenSvc}
}

// IssueTokenRequest asks for a development token
type IssueTokenRequest struct {
	Subject uuid.UUID `json:"subject"`
	Roles   []string  `json:"roles" validate:"required,min=1,dive,oneof=customer merchant"`
}

// IssueToken signs a token for local testing; sessions are otherwise issued by the identity provider.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req IssueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "roles must be customer or merchant")
	}

	if req.Subject == uuid.Nil {
		req.Subject = uuid.New()
	}

	token, err := h.tokenSvc.GenerateToken(req.Subject, req.Roles)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"subject": req.Subject,
		"token":   token,
	})
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "Session not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Authentication middleware test successful",
		"customerID": session.CustomerID,
		"roles":      session.Roles,
		"status":     "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
