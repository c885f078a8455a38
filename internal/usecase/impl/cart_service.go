package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
	now         func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetCart returns the cart of a store
func (s *cartService) GetCart(ctx context.Context, owner, storeSlug string) (*usecase.CartView, error) {
	cart, err := s.load(ctx, owner, storeSlug)
	if err != nil {
		return nil, err
	}

	return usecase.NewCartView(cart), nil
}

// AddOrIncrement snapshots the item's current prices into a new line, or increments the existing line
func (s *cartService) AddOrIncrement(ctx context.Context, owner, storeSlug string, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	item, err := s.catalogRepo.FindItemByID(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogItemNotFound) {
			return nil, domainerrors.ErrCatalogItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find catalog item")
	}

	if item.StoreSlug != storeSlug {
		s.log(ctx).Warn("Item added to another store's cart",
			slog.String("store", storeSlug),
			slog.String("itemStore", item.StoreSlug),
			slog.Any("itemID", item.ID))

		return nil, domainerrors.ErrItemStoreMismatch
	}
	if !item.IsAvailable {
		return nil, domainerrors.ErrItemUnavailable
	}

	cart, err := s.load(ctx, owner, storeSlug)
	if err != nil {
		return nil, err
	}

	cart.AddOrIncrement(item, input.Quantity, input.Instructions, s.now())

	return s.save(ctx, owner, cart)
}

// SetQuantity overwrites the quantity of a line; a quantity below 1 removes it
func (s *cartService) SetQuantity(ctx context.Context, owner, storeSlug string, itemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	cart, err := s.load(ctx, owner, storeSlug)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(itemID, quantity, s.now()) {
		// Unknown items leave the cart untouched.
		return usecase.NewCartView(cart), nil
	}

	return s.save(ctx, owner, cart)
}

// RemoveItem drops a line from the cart
func (s *cartService) RemoveItem(ctx context.Context, owner, storeSlug string, itemID uuid.UUID) (*usecase.CartView, error) {
	cart, err := s.load(ctx, owner, storeSlug)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(itemID, s.now()) {
		return usecase.NewCartView(cart), nil
	}

	return s.save(ctx, owner, cart)
}

// Total returns the recomputed cart total
func (s *cartService) Total(ctx context.Context, owner, storeSlug string) (decimal.Decimal, error) {
	cart, err := s.load(ctx, owner, storeSlug)
	if err != nil {
		return decimal.Zero, err
	}

	return cart.Total(), nil
}

// ClearCart empties the cart of a single store
func (s *cartService) ClearCart(ctx context.Context, owner, storeSlug string) error {
	if owner == "" {
		return domainerrors.ErrCartOwnerRequired
	}

	if err := s.cartRepo.Delete(ctx, owner, storeSlug); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

func (s *cartService) load(ctx context.Context, owner, storeSlug string) (*entity.Cart, error) {
	if owner == "" {
		return nil, domainerrors.ErrCartOwnerRequired
	}

	cart, err := s.cartRepo.Load(ctx, owner, storeSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, owner string, cart *entity.Cart) (*usecase.CartView, error) {
	if err := s.cartRepo.Save(ctx, owner, cart); err != nil {
		s.log(ctx).Error("Failed to persist cart", slog.String("store", cart.StoreSlug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save cart")
	}

	return usecase.NewCartView(cart), nil
}
