package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// CustomerID parses the subject claim.
func (c *Claims) CustomerID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService issues and validates session tokens. Sessions are issued by the
// identity provider; ordering only needs validation and, for tooling, issuance.
type TokenService interface {
	// GenerateToken creates a signed access token for a customer or merchant.
	GenerateToken(subject uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
