package repository

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when the order number or idempotency key is already taken.
	ErrDuplicateOrder = errors.New("order already exists")
	// ErrOrderVersionConflict is returned when the order changed since it was read.
	ErrOrderVersionConflict = errors.New("order version conflict")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists an order with its lines and its initial status event.
	CreateOrder(ctx context.Context, order *entity.Order, initial *entity.OrderStatusEvent) error

	// FindOrderByID retrieves an order with its lines.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate retrieves an order and locks its row until the surrounding transaction ends.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber retrieves an order by its external order number.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// FindOrderByIdempotencyKey retrieves the order created by a submission key.
	FindOrderByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error)

	// FindOrdersByStore lists a store's orders newest first, optionally filtered by status.
	FindOrdersByStore(ctx context.Context, storeSlug string, status *entity.OrderStatus, limit int) ([]*entity.Order, error)

	// UpdateOrderStatus writes the mutable status fields if the stored version still equals expectedVersion.
	UpdateOrderStatus(ctx context.Context, order *entity.Order, expectedVersion int) error

	// UpdatePaymentStatus records the status reported by the payment collaborator.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// AppendStatusEvent appends to the order's status history.
	AppendStatusEvent(ctx context.Context, event *entity.OrderStatusEvent) error

	// FindStatusEvents returns the order's status history ordered by change time.
	FindStatusEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusEvent, error)
}
