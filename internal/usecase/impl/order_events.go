package impl

import (
	"context"
	"log/slog"

	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	"pickup/internal/domain/service"
)

const actorGuest = "guest"

func customerActor(id string) string {
	return "customer:" + id
}

// publishOrderEvent sends an order event after the change is committed. Publishing is
// best effort: the order is already durable, so failures are logged and swallowed.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, order *entity.Order, event *entity.OrderStatusEvent) {
	if publisher == nil {
		return
	}

	msg := &service.OrderEvent{
		Type:        eventType,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		StoreSlug:   order.StoreSlug,
		Status:      order.Status.String(),
		OccurredAt:  order.UpdatedAt,
	}
	if event != nil {
		if event.PreviousStatus != nil {
			msg.PreviousStatus = event.PreviousStatus.String()
		}
		if event.Reason != nil {
			msg.Reason = *event.Reason
		}
		msg.OccurredAt = event.ChangedAt
	}

	if err := publisher.PublishOrderEvent(ctx, msg); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err))
	}
}
