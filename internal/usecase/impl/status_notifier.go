package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"
	"pickup/internal/usecase"

	"go.uber.org/fx"
)

const orderWatchKeyPrefix = "order-watch"

// orderWatch is the status a viewer last saw for an order.
type orderWatch struct {
	Status    entity.OrderStatus `json:"status"`
	CheckedAt time.Time          `json:"checked_at"`
}

type statusNotifier struct {
	store  repository.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
}

// StatusNotifierParams holds dependencies for StatusNotifier, injected by Fx.
type StatusNotifierParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewStatusNotifier creates a notifier that keeps the last seen status per viewer and order
func NewStatusNotifier(params StatusNotifierParams) usecase.StatusNotifier {
	return &statusNotifier{
		store:  params.Store,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (n *statusNotifier) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}

// Poll fetches the order and compares its status with the one retained for this viewer.
func (n *statusNotifier) Poll(ctx context.Context, viewerID, orderNumber string, fetch usecase.OrderFetcher) (*usecase.PollResult, error) {
	order, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	// A poll abandoned mid-flight must not consume the change.
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	key := watchKey(viewerID, orderNumber)
	previous, err := n.loadWatch(ctx, key)
	if err != nil {
		return nil, err
	}

	now := n.now()
	result := &usecase.PollResult{Order: order}
	if previous != nil && previous.Status != order.Status {
		result.Change = &usecase.StatusChange{
			OrderNumber:    order.OrderNumber,
			PreviousStatus: previous.Status,
			CurrentStatus:  order.Status,
			Message:        order.Status.Message(),
			DetectedAt:     now,
			ExpiresAt:      now.Add(usecase.NoticeWindow),
		}
		n.log(ctx).Debug("Order status change detected",
			slog.String("orderNumber", order.OrderNumber),
			slog.String("from", previous.Status.String()),
			slog.String("to", order.Status.String()))
	}

	if err := n.saveWatch(ctx, key, &orderWatch{Status: order.Status, CheckedAt: now}); err != nil {
		return nil, err
	}

	return result, nil
}

func (n *statusNotifier) loadWatch(ctx context.Context, key string) (*orderWatch, error) {
	raw, err := n.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load order watch")
	}

	var watch orderWatch
	if err := json.Unmarshal(raw, &watch); err != nil {
		// A corrupt snapshot is treated as a first fetch.
		n.log(ctx).Warn("Discarding unreadable order watch", slog.String("key", key), slog.Any("error", err))

		return nil, nil
	}

	return &watch, nil
}

func (n *statusNotifier) saveWatch(ctx context.Context, key string, watch *orderWatch) error {
	raw, err := json.Marshal(watch)
	if err != nil {
		return errors.Wrap(err, "failed to encode order watch")
	}
	if err := n.store.Set(ctx, key, raw); err != nil {
		return errors.Wrap(err, "failed to save order watch")
	}

	return nil
}

func watchKey(viewerID, orderNumber string) string {
	return orderWatchKeyPrefix + ":" + viewerID + ":" + orderNumber
}
