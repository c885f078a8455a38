// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogItem is a menu item sold by a store. It is owned by the menu-management side
// and treated as read-only by ordering.
type CatalogItem struct {
	ID              uuid.UUID        `json:"id"`                         // The Global Unique Identifier (GUID) for the item.
	StoreSlug       string           `json:"store_slug"`                 // The slug of the store selling this item.
	Name            string           `json:"name"`                       // Display name shown on the menu.
	Price           decimal.Decimal  `json:"price"`                      // Base price.
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"` // Optional discounted price.
	IsAvailable     bool             `json:"is_available"`               // Whether the item can currently be ordered.
	Stock           *int             `json:"stock,omitempty"`            // Remaining stock, nil when unlimited.
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// EffectivePrice returns the unit price charged for this item right now.
func (i *CatalogItem) EffectivePrice() decimal.Decimal {
	return EffectivePrice(i.Price, i.DiscountedPrice)
}

// HasStock reports whether quantity units can be sold. Items without a stock count are unlimited.
func (i *CatalogItem) HasStock(quantity int) bool {
	if i.Stock == nil {
		return true
	}

	return *i.Stock >= quantity
}
