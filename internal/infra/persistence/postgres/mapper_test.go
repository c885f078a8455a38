package postgres

import (
	"testing"
	"time"

	"pickup/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogItemMapper(t *testing.T) {
	t.Run("absent discount stays absent", func(t *testing.T) {
		item := &entity.CatalogItem{ID: uuid.New(), StoreSlug: "noodle-bar", Price: decimal.RequireFromString("120")}

		got := toCatalogItemDomain(fromCatalogItemDomain(item))

		assert.Nil(t, got.DiscountedPrice)
		assert.True(t, got.EffectivePrice().Equal(decimal.RequireFromString("120")))
	})

	t.Run("discount survives the null column", func(t *testing.T) {
		discounted := decimal.RequireFromString("99.50")
		item := &entity.CatalogItem{ID: uuid.New(), Price: decimal.RequireFromString("120"), DiscountedPrice: &discounted}

		got := toCatalogItemDomain(fromCatalogItemDomain(item))

		require.NotNil(t, got.DiscountedPrice)
		assert.True(t, got.DiscountedPrice.Equal(discounted))
	})
}

func TestOrderMapperKeepsLineOrderAndContact(t *testing.T) {
	customerID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-0A1B2C3D",
		StoreSlug:   "noodle-bar",
		Contact: entity.ContactProfile{
			Name:       "Mei",
			Phone:      "+886912345678",
			CustomerID: &customerID,
		},
		Lines: []*entity.OrderLine{
			{ItemID: uuid.New(), Name: "Beef noodles", Quantity: 2},
			{ItemID: uuid.New(), Name: "Tea", Quantity: 1},
		},
		Status:  entity.OrderStatusPending,
		Version: 1,
	}

	orderM := fromOrderDomain(order)

	require.Len(t, orderM.Lines, 2)
	assert.Equal(t, 0, orderM.Lines[0].Position)
	assert.Equal(t, 1, orderM.Lines[1].Position)
	assert.Equal(t, order.ID, orderM.Lines[1].OrderID)
	assert.Equal(t, "+886912345678", orderM.ContactPhone)

	got := toOrderDomain(orderM)

	assert.Equal(t, order.Contact, got.Contact)
	assert.Equal(t, "Tea", got.Lines[1].Name)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
}

func TestStatusEventMapper(t *testing.T) {
	previous := entity.OrderStatusPending
	reason := "sold out"
	event := &entity.OrderStatusEvent{
		ID:             uuid.New(),
		OrderID:        uuid.New(),
		PreviousStatus: &previous,
		NewStatus:      entity.OrderStatusRejected,
		Reason:         &reason,
		ChangedBy:      "merchant",
		ChangedAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, event, toStatusEventDomain(fromStatusEventDomain(event)))

	initial := &entity.OrderStatusEvent{ID: uuid.New(), NewStatus: entity.OrderStatusPending}
	assert.Nil(t, toStatusEventDomain(fromStatusEventDomain(initial)).PreviousStatus)
}
