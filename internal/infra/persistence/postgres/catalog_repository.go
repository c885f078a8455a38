package postgres

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"
	"pickup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindItemByID retrieves a catalog item by its unique ID.
func (repo *catalogRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*entity.CatalogItem, error) {
	var itemM model.CatalogItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogItemNotFound
		}

		return nil, dbError(err, "failed to find catalog item by ID")
	}

	return toCatalogItemDomain(&itemM), nil
}

// FindItemsByIDs retrieves every existing catalog item among ids.
func (repo *catalogRepository) FindItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.CatalogItem, error) {
	if len(ids) == 0 {
		return []*entity.CatalogItem{}, nil
	}

	var itemModels []*model.CatalogItemModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&itemModels).Error; err != nil {
		return nil, dbError(err, "failed to find catalog items")
	}

	items := make([]*entity.CatalogItem, len(itemModels))
	for i, itemM := range itemModels {
		items[i] = toCatalogItemDomain(itemM)
	}

	return items, nil
}

// Mapper functions

func toCatalogItemDomain(data *model.CatalogItemModel) *entity.CatalogItem {
	if data == nil {
		return nil
	}

	var discounted *decimal.Decimal
	if data.DiscountedPrice.Valid {
		price := data.DiscountedPrice.Decimal
		discounted = &price
	}

	return &entity.CatalogItem{
		ID:              data.ID,
		StoreSlug:       data.StoreSlug,
		Name:            data.Name,
		Price:           data.Price,
		DiscountedPrice: discounted,
		IsAvailable:     data.IsAvailable,
		Stock:           data.Stock,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCatalogItemDomain(data *entity.CatalogItem) *model.CatalogItemModel {
	if data == nil {
		return nil
	}

	var discounted decimal.NullDecimal
	if data.DiscountedPrice != nil {
		discounted = decimal.NewNullDecimal(*data.DiscountedPrice)
	}

	return &model.CatalogItemModel{
		ID:              data.ID,
		StoreSlug:       data.StoreSlug,
		Name:            data.Name,
		Price:           data.Price,
		DiscountedPrice: discounted,
		IsAvailable:     data.IsAvailable,
		Stock:           data.Stock,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
