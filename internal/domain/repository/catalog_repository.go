// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"

	"github.com/google/uuid"
)

// ErrCatalogItemNotFound is returned when a catalog item does not exist.
var ErrCatalogItemNotFound = errors.New("catalog item not found")

// CatalogRepository is the read side of the menu owned by the menu-management service.
type CatalogRepository interface {
	// FindItemByID retrieves a single catalog item.
	FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error)

	// FindItemsByIDs retrieves the items that exist among ids. Missing ids are simply absent from the result.
	FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.CatalogItem, error)
}
