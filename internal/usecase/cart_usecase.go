package usecase

import (
	"context"
	"time"

	"pickup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is a cart as shown to the customer, with totals recomputed from the lines.
type CartView struct {
	StoreSlug string          `json:"store_slug"`
	Lines     []*CartLineView `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CartLineView is one cart line with its computed prices.
type CartLineView struct {
	*entity.CartLine
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// AddCartItemInput represents a request to put an item in the cart
type AddCartItemInput struct {
	ItemID       uuid.UUID
	Quantity     int
	Instructions string
}

// CartUsecase defines the use cases of a store-scoped cart. The owner is the cart-holder
// scope: an authenticated customer or an anonymous cart token.
type CartUsecase interface {
	// GetCart returns the cart of a store, empty if nothing has been added yet
	GetCart(ctx context.Context, owner, storeSlug string) (*CartView, error)

	// AddOrIncrement adds an item, or increments its line when it is already in the cart
	AddOrIncrement(ctx context.Context, owner, storeSlug string, input *AddCartItemInput) (*CartView, error)

	// SetQuantity overwrites the quantity of a line; a quantity below 1 removes it
	SetQuantity(ctx context.Context, owner, storeSlug string, itemID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem drops a line from the cart
	RemoveItem(ctx context.Context, owner, storeSlug string, itemID uuid.UUID) (*CartView, error)

	// Total returns the recomputed cart total
	Total(ctx context.Context, owner, storeSlug string) (decimal.Decimal, error)

	// ClearCart empties the cart of a single store
	ClearCart(ctx context.Context, owner, storeSlug string) error
}

// NewCartView builds the display form of a cart.
func NewCartView(cart *entity.Cart) *CartView {
	lines := make([]*CartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, &CartLineView{
			CartLine:  line,
			UnitPrice: line.UnitPrice(),
			LineTotal: line.LineTotal(),
		})
	}

	return &CartView{
		StoreSlug: cart.StoreSlug,
		Lines:     lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
		UpdatedAt: cart.UpdatedAt,
	}
}
