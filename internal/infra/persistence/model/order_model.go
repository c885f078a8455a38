package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderNumber      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	StoreSlug        string          `gorm:"type:varchar(100);not null;index:idx_orders_store_created,priority:1"`
	ContactName      string          `gorm:"type:varchar(100);not null"`
	ContactPhone     string          `gorm:"type:varchar(20);not null"`
	CustomerID       *uuid.UUID      `gorm:"type:uuid;index"`
	MarketingConsent bool            `gorm:"not null;default:false"`
	IsGuestOrder     bool            `gorm:"not null"`
	TotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DiscountAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string          `gorm:"type:varchar(50);not null"`
	PaymentStatus    string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PickupTime       *time.Time
	Status           string `gorm:"type:varchar(20);not null;index"`
	ActualPickupTime *time.Time
	RejectionReason  *string   `gorm:"type:text"`
	IdempotencyKey   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Version          int       `gorm:"not null;default:1"`
	CreatedAt        time.Time `gorm:"index:idx_orders_store_created,priority:2,sort:desc"`
	UpdatedAt        time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
type OrderLineModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position     int             `gorm:"not null"` // Keeps the cart's display order.
	ItemID       uuid.UUID       `gorm:"type:uuid;not null"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	LineTotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Instructions string          `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}

// OrderStatusEventModel is the GORM-specific struct for the append-only 'order_status_events' table.
type OrderStatusEventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index:idx_order_status_events_order,priority:1"`
	PreviousStatus *string   `gorm:"type:varchar(20)"`
	NewStatus      string    `gorm:"type:varchar(20);not null"`
	Reason         *string   `gorm:"type:text"`
	ChangedBy      string    `gorm:"type:varchar(100);not null"`
	ChangedAt      time.Time `gorm:"not null;index:idx_order_status_events_order,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusEventModel) TableName() string {
	return "order_status_events"
}
