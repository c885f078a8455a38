package usecase

import (
	"context"

	"pickup/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderLookupUsecase finds orders for the customer who placed them
type OrderLookupUsecase interface {
	// LookupGuestOrder finds a guest order by number and the phone it was placed with
	LookupGuestOrder(ctx context.Context, orderNumber, phone string) (*entity.Order, error)

	// LookupCustomerOrder finds an order owned by an authenticated customer
	LookupCustomerOrder(ctx context.Context, orderNumber string, customerID uuid.UUID) (*entity.Order, error)

	// CancelGuestOrder cancels a guest order that has not been picked up yet
	CancelGuestOrder(ctx context.Context, orderNumber, phone string) (*entity.Order, error)

	// CancelCustomerOrder cancels an order owned by an authenticated customer
	CancelCustomerOrder(ctx context.Context, orderNumber string, customerID uuid.UUID) (*entity.Order, error)

	// GeneratePickupQR renders the pickup QR code of a guest order
	GeneratePickupQR(ctx context.Context, orderNumber, phone string) ([]byte, error)
}
