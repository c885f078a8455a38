package repository

import (
	"context"

	"pickup/internal/domain/entity"
	"pickup/internal/errors"
)

// ErrKeyNotFound is returned by a KeyValueStore when the key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable storage substrate for carts and order watches.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// CartRepository persists one cart per (owner, store). Owners are opaque scopes such as
// a customer id or an anonymous cart token; carts of different stores never interact.
type CartRepository interface {
	// Load returns the stored cart, or a new empty cart when none exists.
	Load(ctx context.Context, owner, storeSlug string) (*entity.Cart, error)

	// Save overwrites the stored cart. Last write wins.
	Save(ctx context.Context, owner string, cart *entity.Cart) error

	// Delete removes the stored cart for a single store.
	Delete(ctx context.Context, owner, storeSlug string) error
}
