// Package cartstore persists carts and order watches in a key-value store.
package cartstore

import (
	"context"
	"time"

	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore implements repository.KeyValueStore on plain Redis strings.
// Every key is namespaced as {prefix}:{key}.
type RedisStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. A zero ttl keeps keys until removed.
func NewRedisStore(client redis.Cmdable, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}

	return s.prefix + ":" + key
}

// Get returns the stored value or repository.ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Mark(errors.Wrapf(err, "redis get %s", key), domainerrors.ErrTransientBackend)
	}

	return value, nil
}

// Set overwrites the value and refreshes its expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, s.ttl).Err(); err != nil {
		return errors.Mark(errors.Wrapf(err, "redis set %s", key), domainerrors.ErrTransientBackend)
	}

	return nil
}

// Remove deletes the key. Removing a missing key is not an error.
func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Mark(errors.Wrapf(err, "redis del %s", key), domainerrors.ErrTransientBackend)
	}

	return nil
}
