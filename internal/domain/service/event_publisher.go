package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is published after an order is created or changes status.
type OrderEvent struct {
	Type           string    `json:"type"`
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	StoreSlug      string    `json:"store_slug"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing order events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
