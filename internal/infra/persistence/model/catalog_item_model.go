package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogItemModel is the GORM-specific struct for the 'catalog_items' table.
// The table is owned by menu management; ordering only reads it.
type CatalogItemModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreSlug       string              `gorm:"type:varchar(100);not null;index"`
	Name            string              `gorm:"type:varchar(255);not null"`
	Price           decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	DiscountedPrice decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	IsAvailable     bool                `gorm:"not null;default:true"`
	Stock           *int                `gorm:"type:integer"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CatalogItemModel) TableName() string {
	return "catalog_items"
}
