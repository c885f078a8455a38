package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a session can carry.
type Role string

const (
	// RoleCustomer indicates a signed-in customer.
	RoleCustomer Role = "customer"
	// RoleMerchant indicates a merchant operating a store.
	RoleMerchant Role = "merchant"
)

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleMerchant
}

// Session is the identity resolved from a bearer token.
type Session struct {
	CustomerID uuid.UUID
	Roles      []Role
}

// NewSession builds a session, dropping unknown role strings.
func NewSession(customerID uuid.UUID, roles []string) *Session {
	session := &Session{CustomerID: customerID}
	for _, r := range roles {
		if role := Role(r); role.IsValid() {
			session.Roles = append(session.Roles, role)
		}
	}

	return session
}

// HasRole reports whether the session carries role.
func (s *Session) HasRole(role Role) bool {
	return s != nil && slices.Contains(s.Roles, role)
}
