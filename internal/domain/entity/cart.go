package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity caps the quantity of a single cart line.
const MaxLineQuantity = 999

// CartLine is one catalog item in a cart with the price captured when it was added.
type CartLine struct {
	ItemID          uuid.UUID        `json:"item_id"`
	Name            string           `json:"name"`
	Price           decimal.Decimal  `json:"price"`
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
	Quantity        int              `json:"quantity"`
	Instructions    string           `json:"instructions,omitempty"`
	AddedAt         time.Time        `json:"added_at"`
}

// UnitPrice returns the locked-in effective price of the line.
func (l *CartLine) UnitPrice() decimal.Decimal {
	return EffectivePrice(l.Price, l.DiscountedPrice)
}

// LineTotal returns UnitPrice * Quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is a store-scoped collection of lines. Lines keep insertion order for display
// and never contain the same item twice.
type Cart struct {
	StoreSlug string      `json:"store_slug"`
	Lines     []*CartLine `json:"lines"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewCart returns an empty cart for a store.
func NewCart(storeSlug string) *Cart {
	return &Cart{
		StoreSlug: storeSlug,
		Lines:     []*CartLine{},
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Line returns the line for an item, if present.
func (c *Cart) Line(itemID uuid.UUID) (*CartLine, bool) {
	if idx := c.indexOf(itemID); idx >= 0 {
		return c.Lines[idx], true
	}

	return nil, false
}

// AddOrIncrement adds quantity units of item. An existing line is incremented and keeps
// its original price snapshot; a new line snapshots the item's current prices.
// The running quantity never exceeds MaxLineQuantity.
func (c *Cart) AddOrIncrement(item *CatalogItem, quantity int, instructions string, now time.Time) *CartLine {
	if quantity < 1 {
		quantity = 1
	}
	c.UpdatedAt = now

	if line, ok := c.Line(item.ID); ok {
		line.Quantity = min(line.Quantity+quantity, MaxLineQuantity)
		if instructions != "" {
			line.Instructions = instructions
		}

		return line
	}

	line := &CartLine{
		ItemID:       item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Quantity:     min(quantity, MaxLineQuantity),
		Instructions: instructions,
		AddedAt:      now,
	}
	if item.DiscountedPrice != nil {
		discounted := *item.DiscountedPrice
		line.DiscountedPrice = &discounted
	}
	c.Lines = append(c.Lines, line)

	return line
}

// SetQuantity overwrites the quantity of a line. A quantity below 1 removes the line.
// It returns false when the item is not in the cart.
func (c *Cart) SetQuantity(itemID uuid.UUID, quantity int, now time.Time) bool {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return false
	}
	c.UpdatedAt = now

	if quantity < 1 {
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)

		return true
	}
	c.Lines[idx].Quantity = min(quantity, MaxLineQuantity)

	return true
}

// Remove drops the line for an item. It returns false when the item is not in the cart.
func (c *Cart) Remove(itemID uuid.UUID, now time.Time) bool {
	return c.SetQuantity(itemID, 0, now)
}

// Total sums the line totals. It is recomputed on every call.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.LineTotal())
	}

	return total
}

// ItemCount returns the number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}

func (c *Cart) indexOf(itemID uuid.UUID) int {
	for i, line := range c.Lines {
		if line.ItemID == itemID {
			return i
		}
	}

	return -1
}
