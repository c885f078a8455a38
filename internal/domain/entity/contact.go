package entity

import "github.com/google/uuid"

// ContactProfile is the customer contact snapshot attached to an order.
type ContactProfile struct {
	Name             string     `json:"name"`
	Phone            string     `json:"phone"`                 // E.164 once normalized, e.g. +886912345678.
	CustomerID       *uuid.UUID `json:"customer_id,omitempty"` // Set only for authenticated customers.
	MarketingConsent bool       `json:"marketing_consent"`
}
