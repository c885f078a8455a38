package usecase

import (
	"context"
	"time"

	"pickup/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionLine is an order line as submitted. It carries no price; the order backend
// prices every line from the live catalog.
type SubmissionLine struct {
	ItemID       uuid.UUID `json:"item_id"`
	Quantity     int       `json:"quantity"`
	Instructions string    `json:"instructions,omitempty"`
}

// OrderSubmission is the payload sent to the order backend. Resubmitting the same
// IdempotencyKey never creates a second order.
type OrderSubmission struct {
	StoreSlug      string                `json:"store_slug"`
	Contact        entity.ContactProfile `json:"contact"`
	IsGuestOrder   bool                  `json:"is_guest_order"`
	Lines          []*SubmissionLine     `json:"lines"`
	PaymentMethod  string                `json:"payment_method"`
	PickupTime     *time.Time            `json:"pickup_time,omitempty"`
	IdempotencyKey string                `json:"idempotency_key"`
}

// CheckoutInput represents the contact and pickup details entered at checkout
type CheckoutInput struct {
	Contact        entity.ContactProfile
	PaymentMethod  string
	PickupTime     *time.Time
	IdempotencyKey string // Optional; generated when empty.
}

// CheckoutResult represents the outcome of a successful checkout
type CheckoutResult struct {
	OrderNumber string        `json:"order_number"`
	Order       *entity.Order `json:"order"`
}

// CheckoutUsecase turns a cart into a submitted order
type CheckoutUsecase interface {
	// Assemble validates the cart and contact and builds the submission. It does no I/O.
	Assemble(cart *entity.Cart, input *CheckoutInput, session *entity.Session) (*OrderSubmission, error)

	// Checkout loads the cart, submits it and clears that store's cart on success
	Checkout(ctx context.Context, owner, storeSlug string, input *CheckoutInput, session *entity.Session) (*CheckoutResult, error)

	// CreateOrder prices and persists a submission. A known idempotency key returns the existing order.
	CreateOrder(ctx context.Context, submission *OrderSubmission) (*entity.Order, error)
}
