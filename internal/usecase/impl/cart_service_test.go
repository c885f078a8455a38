package impl

import (
	"context"
	"testing"
	"time"

	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	mockRepo "pickup/internal/mocks/repository"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	catalogRepo *mockRepo.MockCatalogRepository
	now         time.Time
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	svc := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})
	svc.(*cartService).now = func() time.Time { return now }

	return cartServiceFixtures{
		service:     svc,
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		now:         now,
	}
}

func newCatalogItem(store string, price int64) *entity.CatalogItem {
	return &entity.CatalogItem{
		ID:          uuid.New(),
		StoreSlug:   store,
		Name:        "Bubble Tea",
		Price:       decimal.NewFromInt(price),
		IsAvailable: true,
	}
}

func TestCartService_AddOrIncrement_NewLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 3000)

	fx.catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(entity.NewCart("tea-house"), nil)
	fx.cartRepo.EXPECT().
		Save(ctx, "guest:abc", mock.MatchedBy(func(cart *entity.Cart) bool {
			return len(cart.Lines) == 1 && cart.Lines[0].Quantity == 1
		})).
		Return(nil)

	view, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: item.ID, Quantity: 1})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(view.Total))
	assert.Equal(t, 1, view.ItemCount)
	assert.Equal(t, fx.now, view.UpdatedAt)
}

func TestCartService_AddOrIncrement_IncrementKeepsLockedPrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 3000)

	cart := entity.NewCart("tea-house")
	cart.AddOrIncrement(item, 1, "", fx.now)

	// The catalog price changed after the line was added.
	repriced := *item
	repriced.Price = decimal.NewFromInt(5000)

	fx.catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(&repriced, nil)
	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(cart, nil)
	fx.cartRepo.EXPECT().Save(ctx, "guest:abc", cart).Return(nil)

	view, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: item.ID, Quantity: 2})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 3, view.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(9000).Equal(view.Total))
}

func TestCartService_AddOrIncrement_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown item", func(t *testing.T) {
		fx := createTestCartService(t)
		id := uuid.New()
		fx.catalogRepo.EXPECT().FindItemByID(ctx, id).Return(nil, repository.ErrCatalogItemNotFound)

		_, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: id})
		assert.ErrorIs(t, err, domainerrors.ErrCatalogItemNotFound)
	})

	t.Run("item of another store", func(t *testing.T) {
		fx := createTestCartService(t)
		item := newCatalogItem("noodle-bar", 100)
		fx.catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

		_, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: item.ID})
		assert.ErrorIs(t, err, domainerrors.ErrItemStoreMismatch)
	})

	t.Run("unavailable item", func(t *testing.T) {
		fx := createTestCartService(t)
		item := newCatalogItem("tea-house", 100)
		item.IsAvailable = false
		fx.catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)

		_, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: item.ID})
		assert.ErrorIs(t, err, domainerrors.ErrItemUnavailable)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestCartService(t)
		item := newCatalogItem("tea-house", 100)
		fx.catalogRepo.EXPECT().FindItemByID(ctx, item.ID).Return(item, nil)
		fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(entity.NewCart("tea-house"), nil)
		fx.cartRepo.EXPECT().Save(ctx, "guest:abc", mock.Anything).Return(errors.New("redis down"))

		_, err := fx.service.AddOrIncrement(ctx, "guest:abc", "tea-house", &usecase.AddCartItemInput{ItemID: item.ID})
		assert.Error(t, err)
	})
}

func TestCartService_SetQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("zero removes the line", func(t *testing.T) {
		fx := createTestCartService(t)
		item := newCatalogItem("tea-house", 3000)
		cart := entity.NewCart("tea-house")
		cart.AddOrIncrement(item, 3, "", fx.now)

		fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(cart, nil)
		fx.cartRepo.EXPECT().Save(ctx, "guest:abc", cart).Return(nil)

		view, err := fx.service.SetQuantity(ctx, "guest:abc", "tea-house", item.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.True(t, view.Total.IsZero())
	})

	t.Run("unknown item leaves cart untouched", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(entity.NewCart("tea-house"), nil)

		view, err := fx.service.SetQuantity(ctx, "guest:abc", "tea-house", uuid.New(), 4)
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	first := newCatalogItem("tea-house", 100)
	second := newCatalogItem("tea-house", 250)
	cart := entity.NewCart("tea-house")
	cart.AddOrIncrement(first, 1, "", fx.now)
	cart.AddOrIncrement(second, 2, "less ice", fx.now)

	fx.cartRepo.EXPECT().Load(ctx, "customer:1", "tea-house").Return(cart, nil)
	fx.cartRepo.EXPECT().Save(ctx, "customer:1", cart).Return(nil)

	view, err := fx.service.RemoveItem(ctx, "customer:1", "tea-house", first.ID)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, second.ID, view.Lines[0].ItemID)
	assert.True(t, decimal.NewFromInt(500).Equal(view.Total))
}

func TestCartService_Total(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	discounted := decimal.RequireFromString("80.5")
	item := newCatalogItem("tea-house", 100)
	item.DiscountedPrice = &discounted
	cart := entity.NewCart("tea-house")
	cart.AddOrIncrement(item, 2, "", fx.now)

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(cart, nil)

	total, err := fx.service.Total(ctx, "guest:abc", "tea-house")
	require.NoError(t, err)
	assert.Equal(t, "161", total.String())
}

func TestCartService_OwnerRequired(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	_, err := fx.service.GetCart(ctx, "", "tea-house")
	assert.ErrorIs(t, err, domainerrors.ErrCartOwnerRequired)

	err = fx.service.ClearCart(ctx, "", "tea-house")
	assert.ErrorIs(t, err, domainerrors.ErrCartOwnerRequired)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Delete(ctx, "guest:abc", "tea-house").Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx, "guest:abc", "tea-house"))
}
