package cartstore

import (
	"context"
	"log/slog"

	"pickup/config"
	"pickup/internal/domain/lifecycle"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the key-value store, injected by Fx.
type StoreParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewKeyValueStore returns a Redis store when redis.addr is configured, otherwise an in-memory store.
func NewKeyValueStore(params StoreParams) (repository.KeyValueStore, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Warn("Redis is not configured, carts are kept in memory")

		return NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", redisCfg.Addr), slog.Int("db", redisCfg.DB))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis connection")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisStore(client, redisCfg.KeyPrefix, redisCfg.TTL), nil
}
