package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(price int64) *CatalogItem {
	return &CatalogItem{
		ID:          uuid.New(),
		StoreSlug:   "s1",
		Name:        "item",
		Price:       decimal.NewFromInt(price),
		IsAvailable: true,
	}
}

func TestCart_AddIncrementAndZero(t *testing.T) {
	now := time.Now()
	cart := NewCart("s1")
	itemA := newTestItem(3000)

	cart.AddOrIncrement(itemA, 1, "", now)
	assert.True(t, decimal.NewFromInt(3000).Equal(cart.Total()))

	cart.AddOrIncrement(itemA, 2, "", now)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(9000).Equal(cart.Total()))

	assert.True(t, cart.SetQuantity(itemA.ID, 0, now))
	assert.True(t, cart.IsEmpty())
	assert.True(t, decimal.Zero.Equal(cart.Total()))
}

func TestCart_PriceLockedAtAdd(t *testing.T) {
	now := time.Now()
	cart := NewCart("s1")
	item := newTestItem(1000)

	cart.AddOrIncrement(item, 1, "", now)

	discounted := decimal.NewFromInt(500)
	item.DiscountedPrice = &discounted
	item.Price = decimal.NewFromInt(1200)
	cart.AddOrIncrement(item, 1, "", now)

	line, ok := cart.Line(item.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, decimal.NewFromInt(1000).Equal(line.UnitPrice()))
	assert.True(t, decimal.NewFromInt(2000).Equal(cart.Total()))
}

func TestCart_LineCountMatchesDistinctItems(t *testing.T) {
	now := time.Now()
	cart := NewCart("s1")
	items := []*CatalogItem{newTestItem(100), newTestItem(200), newTestItem(300)}

	for i := 0; i < 3; i++ {
		for _, item := range items {
			cart.AddOrIncrement(item, 1, "", now)
		}
	}
	assert.Len(t, cart.Lines, 3)

	cart.Remove(items[1].ID, now)
	cart.SetQuantity(items[2].ID, -4, now)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, items[0].ID, cart.Lines[0].ItemID)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_TotalIsRecomputedFromLines(t *testing.T) {
	now := time.Now()
	cart := NewCart("s1")
	a := newTestItem(150)
	b := newTestItem(275)
	discounted := decimal.RequireFromString("99.5")
	b.DiscountedPrice = &discounted

	cart.AddOrIncrement(a, 2, "", now)
	cart.AddOrIncrement(b, 3, "no onions", now)
	cart.SetQuantity(a.ID, 5, now)

	want := decimal.Zero
	for _, line := range cart.Lines {
		want = want.Add(line.UnitPrice().Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	assert.True(t, want.Equal(cart.Total()))
	assert.True(t, decimal.RequireFromString("1048.5").Equal(cart.Total()))
}

func TestCart_NonPositiveAddIsNormalized(t *testing.T) {
	cart := NewCart("s1")
	item := newTestItem(100)

	cart.AddOrIncrement(item, 0, "", time.Now())

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_UnknownItem(t *testing.T) {
	cart := NewCart("s1")

	assert.False(t, cart.SetQuantity(uuid.New(), 2, time.Now()))
	assert.False(t, cart.Remove(uuid.New(), time.Now()))
}

func TestCart_LineQuantityIsCapped(t *testing.T) {
	now := time.Now()
	cart := NewCart("s1")
	item := newTestItem(100)

	for range 3 {
		cart.AddOrIncrement(item, 500, "", now)
	}
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, MaxLineQuantity, cart.Lines[0].Quantity)

	cart.AddOrIncrement(item, 1, "", now)
	assert.Equal(t, MaxLineQuantity, cart.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(99900).Equal(cart.Total()))

	other := newTestItem(10)
	cart.AddOrIncrement(other, 5000, "", now)
	assert.Equal(t, MaxLineQuantity, cart.Lines[1].Quantity)

	assert.True(t, cart.SetQuantity(other.ID, 1200, now))
	assert.Equal(t, MaxLineQuantity, cart.Lines[1].Quantity)
}
