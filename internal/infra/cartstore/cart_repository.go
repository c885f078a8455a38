package cartstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"
)

const cartKeyPrefix = "cart"

type kvCartRepository struct {
	store  repository.KeyValueStore
	logger *slog.Logger
}

// NewCartRepository stores one JSON document per (owner, store) in the given KeyValueStore.
func NewCartRepository(store repository.KeyValueStore, logger *slog.Logger) repository.CartRepository {
	return &kvCartRepository{
		store:  store,
		logger: logger,
	}
}

// CartKey returns the storage key of a cart, cart:{owner}:{storeSlug}.
func CartKey(owner, storeSlug string) string {
	return cartKeyPrefix + ":" + owner + ":" + storeSlug
}

func (r *kvCartRepository) Load(ctx context.Context, owner, storeSlug string) (*entity.Cart, error) {
	raw, err := r.store.Get(ctx, CartKey(owner, storeSlug))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return entity.NewCart(storeSlug), nil
		}

		return nil, errors.Wrap(err, "failed to read cart")
	}

	var cart entity.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		// An unreadable cart is dropped rather than blocking the customer.
		r.logger.Warn("Discarding unreadable cart", slog.String("owner", owner), slog.String("store", storeSlug), slog.Any("error", err))

		return entity.NewCart(storeSlug), nil
	}
	cart.StoreSlug = storeSlug
	if cart.Lines == nil {
		cart.Lines = []*entity.CartLine{}
	}

	return &cart, nil
}

func (r *kvCartRepository) Save(ctx context.Context, owner string, cart *entity.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart")
	}

	if err := r.store.Set(ctx, CartKey(owner, cart.StoreSlug), raw); err != nil {
		return errors.Wrap(err, "failed to write cart")
	}

	return nil
}

func (r *kvCartRepository) Delete(ctx context.Context, owner, storeSlug string) error {
	if err := r.store.Remove(ctx, CartKey(owner, storeSlug)); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}
