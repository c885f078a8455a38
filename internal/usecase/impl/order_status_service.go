package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pickup/config"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	"pickup/internal/domain/service"
	"pickup/internal/errors"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderStatusService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// OrderStatusServiceParams holds dependencies for OrderStatusService, injected by Fx.
type OrderStatusServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrderRepo     repository.OrderRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderStatusService creates a new order status service instance
func NewOrderStatusService(params OrderStatusServiceParams) usecase.OrderStatusUsecase {
	return &orderStatusService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		qrcode:    params.QRCodeService,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *orderStatusService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// TransitionOrder locks the order, validates the change against the state machine and
// writes the new status together with its history event. Transitions are never retried.
func (s *orderStatusService) TransitionOrder(ctx context.Context, input *usecase.TransitionInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	reason := normalizeReason(input.Reason)
	if input.Status.RequiresReason() && reason == nil {
		return nil, domainerrors.ErrRejectionReasonRequired
	}

	var (
		updated *entity.Order
		event   *entity.OrderStatusEvent
	)
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.NewOrderRepository()

		order, err := orders.FindOrderByIDForUpdate(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to lock order")
		}

		if !order.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrIllegalTransition.WithDetails(order.Status.String() + " -> " + input.Status.String())
		}

		expectedVersion := order.Version
		event = order.ApplyTransition(input.Status, reason, input.ChangedBy, s.now())

		if err := orders.UpdateOrderStatus(ctx, order, expectedVersion); err != nil {
			if errors.Is(err, repository.ErrOrderVersionConflict) {
				return domainerrors.ErrConcurrentUpdate
			}

			return errors.Wrap(err, "failed to update order status")
		}
		if err := orders.AppendStatusEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to append status event")
		}
		updated = order

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Order transition rejected",
			slog.Any("orderID", input.OrderID),
			slog.String("to", input.Status.String()),
			slog.Any("error", err))

		return nil, err
	}

	s.log(ctx).Info("Order transitioned",
		slog.String("orderNumber", updated.OrderNumber),
		slog.String("from", event.PreviousStatus.String()),
		slog.String("to", updated.Status.String()),
		slog.String("by", input.ChangedBy))

	publishOrderEvent(ctx, s.publisher, s.log(ctx), service.OrderEventStatusChanged, updated, event)

	return updated, nil
}

// CompletePickup completes the order shown on a scanned pickup QR code
func (s *orderStatusService) CompletePickup(ctx context.Context, qrData, changedBy string) (*entity.Order, error) {
	orderNumber, err := s.qrcode.ParsePickupQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidPickupCode
	}

	order, err := s.orderRepo.FindOrderByNumber(ctx, orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by number")
	}

	return s.TransitionOrder(ctx, &usecase.TransitionInput{
		OrderID:   order.ID,
		Status:    entity.OrderStatusCompleted,
		ChangedBy: changedBy,
	})
}

// UpdatePaymentStatus records the status reported by the payment collaborator
func (s *orderStatusService) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown payment status")
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to update payment status")
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	s.log(ctx).Info("Payment status recorded", slog.String("orderNumber", order.OrderNumber), slog.String("paymentStatus", string(status)))

	return order, nil
}

// ListStoreOrders returns a store's order queue, newest first
func (s *orderStatusService) ListStoreOrders(ctx context.Context, storeSlug string, status *entity.OrderStatus) ([]*entity.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	orders, err := s.orderRepo.FindOrdersByStore(ctx, storeSlug, status, s.config.Order.MerchantQueueLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by store")
	}

	return orders, nil
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
