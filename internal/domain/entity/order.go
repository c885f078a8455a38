package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the state reported by the external payment collaborator.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Order is a submitted pickup order. Only Status, PaymentStatus, ActualPickupTime and
// RejectionReason change after creation.
type Order struct {
	ID               uuid.UUID           `json:"id"`
	OrderNumber      string              `json:"order_number"` // Globally unique external lookup key.
	StoreSlug        string              `json:"store_slug"`
	Contact          ContactProfile      `json:"contact"`
	IsGuestOrder     bool                `json:"is_guest_order"`
	Lines            []*OrderLine        `json:"lines"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`    // Sum of base prices.
	DiscountAmount   decimal.Decimal     `json:"discount_amount"` // TotalAmount - FinalAmount.
	FinalAmount      decimal.Decimal     `json:"final_amount"`    // Sum of effective prices.
	PaymentMethod    string              `json:"payment_method"`
	PaymentStatus    PaymentStatus       `json:"payment_status"`
	PickupTime       *time.Time          `json:"pickup_time,omitempty"`
	Status           OrderStatus         `json:"status"`
	ActualPickupTime *time.Time          `json:"actual_pickup_time,omitempty"`
	RejectionReason  *string             `json:"rejection_reason,omitempty"`
	IdempotencyKey   string              `json:"-"`
	Version          int                 `json:"-"` // Incremented on every status change.
	History          []*OrderStatusEvent `json:"history,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

// OrderLine is one priced line of an order.
type OrderLine struct {
	ID           uuid.UUID       `json:"id"`
	OrderID      uuid.UUID       `json:"order_id"`
	ItemID       uuid.UUID       `json:"item_id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
	Instructions string          `json:"instructions,omitempty"`
}

// OrderStatusEvent is an immutable record of one status change.
type OrderStatusEvent struct {
	ID             uuid.UUID    `json:"id"`
	OrderID        uuid.UUID    `json:"order_id"`
	PreviousStatus *OrderStatus `json:"previous_status"` // Nil for the initial event.
	NewStatus      OrderStatus  `json:"new_status"`
	Reason         *string      `json:"reason,omitempty"`
	ChangedBy      string       `json:"changed_by"`
	ChangedAt      time.Time    `json:"changed_at"`
}

// NewInitialStatusEvent records the creation of an order in the pending state.
func NewInitialStatusEvent(order *Order, changedBy string) *OrderStatusEvent {
	return &OrderStatusEvent{
		ID:        uuid.New(),
		OrderID:   order.ID,
		NewStatus: order.Status,
		ChangedBy: changedBy,
		ChangedAt: order.CreatedAt,
	}
}

// ApplyTransition moves the order to next and returns the matching event.
// The caller must have checked CanTransitionTo.
func (o *Order) ApplyTransition(next OrderStatus, reason *string, changedBy string, now time.Time) *OrderStatusEvent {
	previous := o.Status

	o.Status = next
	o.Version++
	o.UpdatedAt = now

	switch next {
	case OrderStatusRejected:
		o.RejectionReason = reason
	case OrderStatusCompleted:
		pickedUp := now
		o.ActualPickupTime = &pickedUp
	}

	return &OrderStatusEvent{
		ID:             uuid.New(),
		OrderID:        o.ID,
		PreviousStatus: &previous,
		NewStatus:      next,
		Reason:         reason,
		ChangedBy:      changedBy,
		ChangedAt:      now,
	}
}
