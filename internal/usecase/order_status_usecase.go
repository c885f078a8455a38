package usecase

import (
	"context"

	"pickup/internal/domain/entity"

	"github.com/google/uuid"
)

// TransitionInput represents a request to move an order to another status
type TransitionInput struct {
	OrderID   uuid.UUID
	Status    entity.OrderStatus
	Reason    *string
	ChangedBy string
}

// OrderStatusUsecase drives orders through the fulfillment state machine
type OrderStatusUsecase interface {
	// TransitionOrder applies a status change. Illegal changes are rejected and nothing is written.
	TransitionOrder(ctx context.Context, input *TransitionInput) (*entity.Order, error)

	// CompletePickup completes the order identified by a scanned pickup QR code
	CompletePickup(ctx context.Context, qrData, changedBy string) (*entity.Order, error)

	// UpdatePaymentStatus records the status reported by the payment collaborator
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error)

	// ListStoreOrders returns a store's order queue, newest first
	ListStoreOrders(ctx context.Context, storeSlug string, status *entity.OrderStatus) ([]*entity.Order, error)
}
