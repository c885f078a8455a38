package impl

import (
	"context"
	"log/slog"

	"pickup/config"
	deliverycontext "pickup/internal/delivery/context"
	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	"pickup/internal/domain/service"
	"pickup/internal/errors"
	"pickup/internal/usecase"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderLookupService struct {
	orderRepo  repository.OrderRepository
	statusUC   usecase.OrderStatusUsecase
	phone      service.PhoneNormalizer
	qrcode     service.QRCodeService
	config     *config.Config
	logger     *slog.Logger
	newBackOff func() backoff.BackOff
}

// OrderLookupServiceParams holds dependencies for OrderLookupService, injected by Fx.
type OrderLookupServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	StatusUsecase usecase.OrderStatusUsecase
	Phone         service.PhoneNormalizer
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderLookupService creates a new order lookup service instance
func NewOrderLookupService(params OrderLookupServiceParams) usecase.OrderLookupUsecase {
	return &orderLookupService{
		orderRepo:  params.OrderRepo,
		statusUC:   params.StatusUsecase,
		phone:      params.Phone,
		qrcode:     params.QRCodeService,
		config:     params.Config,
		logger:     params.Logger,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

func (s *orderLookupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// LookupGuestOrder finds a guest order by number and the phone it was placed with.
// A wrong phone yields ErrPhoneMismatch and no order contents.
func (s *orderLookupService) LookupGuestOrder(ctx context.Context, orderNumber, phone string) (*entity.Order, error) {
	order, err := s.findGuestOrder(ctx, orderNumber, phone)
	if err != nil {
		return nil, err
	}

	return s.withHistory(ctx, order)
}

// LookupCustomerOrder finds an order owned by an authenticated customer
func (s *orderLookupService) LookupCustomerOrder(ctx context.Context, orderNumber string, customerID uuid.UUID) (*entity.Order, error) {
	order, err := s.findCustomerOrder(ctx, orderNumber, customerID)
	if err != nil {
		return nil, err
	}

	return s.withHistory(ctx, order)
}

// CancelGuestOrder cancels a guest order through the state machine
func (s *orderLookupService) CancelGuestOrder(ctx context.Context, orderNumber, phone string) (*entity.Order, error) {
	order, err := s.findGuestOrder(ctx, orderNumber, phone)
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, order, actorGuest)
}

// CancelCustomerOrder cancels an order owned by an authenticated customer
func (s *orderLookupService) CancelCustomerOrder(ctx context.Context, orderNumber string, customerID uuid.UUID) (*entity.Order, error) {
	order, err := s.findCustomerOrder(ctx, orderNumber, customerID)
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, order, customerActor(customerID.String()))
}

// GeneratePickupQR renders the pickup QR code of a guest order
func (s *orderLookupService) GeneratePickupQR(ctx context.Context, orderNumber, phone string) ([]byte, error) {
	order, err := s.findGuestOrder(ctx, orderNumber, phone)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GeneratePickupQR(order.OrderNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return png, nil
}

func (s *orderLookupService) cancel(ctx context.Context, order *entity.Order, actor string) (*entity.Order, error) {
	updated, err := s.statusUC.TransitionOrder(ctx, &usecase.TransitionInput{
		OrderID:   order.ID,
		Status:    entity.OrderStatusCanceled,
		ChangedBy: actor,
	})
	if err != nil {
		return nil, err
	}

	return s.withHistory(ctx, updated)
}

func (s *orderLookupService) findGuestOrder(ctx context.Context, orderNumber, phone string) (*entity.Order, error) {
	normalized, err := s.phone.Normalize(phone)
	if err != nil {
		// An unparsable phone can never match a stored contact.
		s.log(ctx).Warn("Guest lookup with invalid phone", slog.String("orderNumber", orderNumber))

		return nil, domainerrors.ErrPhoneMismatch
	}

	order, err := s.findByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if order.Contact.Phone != normalized {
		s.log(ctx).Warn("Guest lookup phone mismatch", slog.String("orderNumber", orderNumber))

		return nil, domainerrors.ErrPhoneMismatch
	}

	return order, nil
}

func (s *orderLookupService) findCustomerOrder(ctx context.Context, orderNumber string, customerID uuid.UUID) (*entity.Order, error) {
	order, err := s.findByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if order.Contact.CustomerID == nil || *order.Contact.CustomerID != customerID {
		s.log(ctx).Warn("Customer lookup of foreign order", slog.String("orderNumber", orderNumber), slog.Any("customerID", customerID))

		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// findByNumber is read-only, so transient backend failures are retried.
func (s *orderLookupService) findByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	order, err := retryRead(ctx, s, func() (*entity.Order, error) {
		return s.orderRepo.FindOrderByNumber(ctx, orderNumber)
	})
	if err != nil {
		return nil, s.mapLookupError(ctx, orderNumber, err)
	}

	return order, nil
}

func (s *orderLookupService) withHistory(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	history, err := retryRead(ctx, s, func() ([]*entity.OrderStatusEvent, error) {
		return s.orderRepo.FindStatusEvents(ctx, order.ID)
	})
	if err != nil {
		return nil, s.mapLookupError(ctx, order.OrderNumber, err)
	}
	order.History = history

	return order, nil
}

func (s *orderLookupService) mapLookupError(ctx context.Context, orderNumber string, err error) error {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, context.DeadlineExceeded):
		s.log(ctx).Warn("Order lookup timed out", slog.String("orderNumber", orderNumber), slog.Any("error", err))

		return domainerrors.ErrLookupTimeout
	default:
		return errors.Wrap(err, "failed to look up order")
	}
}

func retryRead[T any](ctx context.Context, s *orderLookupService, op func() (T, error)) (T, error) {
	return backoff.Retry(ctx, func() (T, error) {
		result, err := op()
		if err != nil && !errors.Is(err, domainerrors.ErrTransientBackend) {
			return result, backoff.Permanent(err)
		}

		return result, err
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(uint(s.config.Order.LookupMaxRetries)),
	)
}
