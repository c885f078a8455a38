package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultPaymentMethod    = "cash"
	maxContactNameLength    = 100
	maxOrderNumberAttempts  = 3
	orderNumberSuffixLength = 8
)

type checkoutService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	cartRepo   repository.CartRepository
	phone      service.PhoneNormalizer
	publisher  service.EventPublisher
	config     *config.Config
	logger     *slog.Logger
	now        func() time.Time
	newBackOff func() backoff.BackOff
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	CartRepo  repository.CartRepository
	Phone     service.PhoneNormalizer
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		cartRepo:   params.CartRepo,
		phone:      params.Phone,
		publisher:  params.Publisher,
		config:     params.Config,
		logger:     params.Logger,
		now:        time.Now,
		newBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
}

func (s *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Assemble validates the cart and contact and builds the submission
func (s *checkoutService) Assemble(cart *entity.Cart, input *usecase.CheckoutInput, session *entity.Session) (*usecase.OrderSubmission, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidContact
	}

	contact, err := s.normalizeContact(input.Contact, session)
	if err != nil {
		return nil, err
	}

	lines := make([]*usecase.SubmissionLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, &usecase.SubmissionLine{
			ItemID:       line.ItemID,
			Quantity:     line.Quantity,
			Instructions: line.Instructions,
		})
	}

	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if key == "" {
		key = uuid.NewString()
	}

	return &usecase.OrderSubmission{
		StoreSlug:      cart.StoreSlug,
		Contact:        contact,
		IsGuestOrder:   session == nil,
		Lines:          lines,
		PaymentMethod:  paymentMethod,
		PickupTime:     input.PickupTime,
		IdempotencyKey: key,
	}, nil
}

func (s *checkoutService) normalizeContact(contact entity.ContactProfile, session *entity.Session) (entity.ContactProfile, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" || utf8.RuneCountInString(contact.Name) > maxContactNameLength {
		return contact, domainerrors.ErrInvalidContact.WithDetails("name")
	}

	phone, err := s.phone.Normalize(contact.Phone)
	if err != nil {
		return contact, domainerrors.ErrInvalidContact.WithDetails("phone")
	}
	contact.Phone = phone

	// A contact may only name the customer the session belongs to.
	if session == nil {
		if contact.CustomerID != nil {
			return contact, domainerrors.ErrForbidden
		}

		return contact, nil
	}
	if contact.CustomerID != nil && *contact.CustomerID != session.CustomerID {
		return contact, domainerrors.ErrForbidden
	}
	customerID := session.CustomerID
	contact.CustomerID = &customerID

	return contact, nil
}

// Checkout submits the store's cart and clears it once the order exists
func (s *checkoutService) Checkout(ctx context.Context, owner, storeSlug string, input *usecase.CheckoutInput, session *entity.Session) (*usecase.CheckoutResult, error) {
	if owner == "" {
		return nil, domainerrors.ErrCartOwnerRequired
	}

	cart, err := s.cartRepo.Load(ctx, owner, storeSlug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	submission, err := s.Assemble(cart, input, session)
	if err != nil {
		return nil, err
	}

	order, err := s.submit(ctx, submission)
	if err != nil {
		s.log(ctx).Error("Checkout failed", slog.String("store", storeSlug), slog.Any("error", err))

		return nil, err
	}

	// The order is durable at this point; a stale cart is the lesser failure.
	if err := s.cartRepo.Delete(ctx, owner, storeSlug); err != nil {
		s.log(ctx).Warn("Failed to clear cart after checkout",
			slog.String("store", storeSlug),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err))
	}

	s.log(ctx).Info("Checkout completed", slog.String("store", storeSlug), slog.String("orderNumber", order.OrderNumber))

	return &usecase.CheckoutResult{OrderNumber: order.OrderNumber, Order: order}, nil
}

// submit retries transient failures. Every attempt carries the same idempotency key,
// so a retry after a lost response returns the order created by the first attempt.
func (s *checkoutService) submit(ctx context.Context, submission *usecase.OrderSubmission) (*entity.Order, error) {
	attempt := 0
	order, err := backoff.Retry(ctx, func() (*entity.Order, error) {
		attempt++
		order, err := s.CreateOrder(ctx, submission)
		if err == nil {
			return order, nil
		}
		if errors.Is(err, domainerrors.ErrTransientBackend) {
			s.log(ctx).Warn("Order submission failed, retrying",
				slog.Int("attempt", attempt),
				slog.String("idempotencyKey", submission.IdempotencyKey),
				slog.Any("error", err))

			return nil, err
		}

		return nil, backoff.Permanent(err)
	},
		backoff.WithBackOff(s.newBackOff()),
		backoff.WithMaxTries(uint(s.config.Order.SubmitMaxRetries)),
	)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrder prices the submission from the live catalog and persists it
func (s *checkoutService) CreateOrder(ctx context.Context, submission *usecase.OrderSubmission) (*entity.Order, error) {
	if submission == nil || len(submission.Lines) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	if submission.IdempotencyKey == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("idempotency key is required")
	}

	existing, err := s.orderRepo.FindOrderByIdempotencyKey(ctx, submission.IdempotencyKey)
	if err == nil {
		return s.replay(ctx, existing, submission)
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	var order *entity.Order
	for range maxOrderNumberAttempts {
		order, err = s.createInTx(ctx, submission)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateOrder) {
			return nil, err
		}

		// Either a concurrent submission with the same key won, or the order number collided.
		if existing, findErr := s.orderRepo.FindOrderByIdempotencyKey(ctx, submission.IdempotencyKey); findErr == nil {
			return s.replay(ctx, existing, submission)
		}
		s.log(ctx).Warn("Order number collision, regenerating", slog.Any("error", err))
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate order number")
	}

	s.log(ctx).Info("Order created",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("store", order.StoreSlug),
		slog.String("finalAmount", order.FinalAmount.String()))

	publishOrderEvent(ctx, s.publisher, s.log(ctx), service.OrderEventCreated, order, nil)

	return order, nil
}

// replay returns the order stored under the submission's key, but only when it was created
// from the same store, contact and lines. A key reused for anything else is rejected so
// neither the stored order nor the caller's cart is touched.
func (s *checkoutService) replay(ctx context.Context, existing *entity.Order, submission *usecase.OrderSubmission) (*entity.Order, error) {
	if !sameSubmission(existing, submission) {
		s.log(ctx).Warn("Idempotency key reused for a different submission",
			slog.String("store", submission.StoreSlug),
			slog.String("orderStore", existing.StoreSlug))

		return nil, domainerrors.ErrIdempotencyKeyReused
	}

	s.log(ctx).Info("Replayed order submission", slog.String("orderNumber", existing.OrderNumber))

	return existing, nil
}

func sameSubmission(order *entity.Order, submission *usecase.OrderSubmission) bool {
	if order.StoreSlug != submission.StoreSlug || order.Contact.Phone != submission.Contact.Phone {
		return false
	}

	orderCustomer, submissionCustomer := order.Contact.CustomerID, submission.Contact.CustomerID
	if (orderCustomer == nil) != (submissionCustomer == nil) {
		return false
	}
	if orderCustomer != nil && *orderCustomer != *submissionCustomer {
		return false
	}

	quantities := make(map[uuid.UUID]int, len(order.Lines))
	for _, line := range order.Lines {
		quantities[line.ItemID] += line.Quantity
	}
	for _, line := range submission.Lines {
		quantities[line.ItemID] -= line.Quantity
	}
	for _, remaining := range quantities {
		if remaining != 0 {
			return false
		}
	}

	return true
}

func (s *checkoutService) createInTx(ctx context.Context, submission *usecase.OrderSubmission) (*entity.Order, error) {
	var order *entity.Order
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		priced, err := s.priceOrder(ctx, factory.NewCatalogRepository(), submission)
		if err != nil {
			return err
		}

		actor := actorGuest
		if priced.Contact.CustomerID != nil {
			actor = customerActor(priced.Contact.CustomerID.String())
		}

		if err := factory.NewOrderRepository().CreateOrder(ctx, priced, entity.NewInitialStatusEvent(priced, actor)); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		order = priced

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// priceOrder resolves every line against the catalog. Client-side prices are never trusted.
func (s *checkoutService) priceOrder(ctx context.Context, catalog repository.CatalogRepository, submission *usecase.OrderSubmission) (*entity.Order, error) {
	ids := make([]uuid.UUID, 0, len(submission.Lines))
	for _, line := range submission.Lines {
		if line.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
		}
		ids = append(ids, line.ItemID)
	}

	items, err := catalog.FindItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find catalog items")
	}
	byID := make(map[uuid.UUID]*entity.CatalogItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	now := s.now()
	order := &entity.Order{
		ID:             uuid.New(),
		OrderNumber:    s.newOrderNumber(now),
		StoreSlug:      submission.StoreSlug,
		Contact:        submission.Contact,
		IsGuestOrder:   submission.IsGuestOrder,
		Lines:          make([]*entity.OrderLine, 0, len(submission.Lines)),
		TotalAmount:    decimal.Zero,
		FinalAmount:    decimal.Zero,
		PaymentMethod:  submission.PaymentMethod,
		PaymentStatus:  entity.PaymentStatusPending,
		PickupTime:     submission.PickupTime,
		Status:         entity.OrderStatusPending,
		IdempotencyKey: submission.IdempotencyKey,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	for _, line := range submission.Lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, domainerrors.ErrCatalogItemNotFound.WithDetails(line.ItemID.String())
		}
		if item.StoreSlug != submission.StoreSlug {
			return nil, domainerrors.ErrItemStoreMismatch.WithDetails(item.Name)
		}
		if !item.IsAvailable {
			return nil, domainerrors.ErrItemUnavailable.WithDetails(item.Name)
		}
		if !item.HasStock(line.Quantity) {
			return nil, domainerrors.ErrInsufficientStock.WithDetails(item.Name)
		}

		qty := decimal.NewFromInt(int64(line.Quantity))
		unitPrice := item.EffectivePrice()
		lineTotal := unitPrice.Mul(qty)

		order.Lines = append(order.Lines, &entity.OrderLine{
			ID:           uuid.New(),
			OrderID:      order.ID,
			ItemID:       item.ID,
			Name:         item.Name,
			Quantity:     line.Quantity,
			UnitPrice:    unitPrice,
			LineTotal:    lineTotal,
			Instructions: line.Instructions,
		})
		order.TotalAmount = order.TotalAmount.Add(item.Price.Mul(qty))
		order.FinalAmount = order.FinalAmount.Add(lineTotal)
	}
	order.DiscountAmount = order.TotalAmount.Sub(order.FinalAmount)

	return order, nil
}

// newOrderNumber returns e.g. ORD-20260101-1A2B3C4D.
func (s *checkoutService) newOrderNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:orderNumberSuffixLength]

	return fmt.Sprintf("%s-%s-%s", s.config.Order.NumberPrefix, now.Format("20060102"), strings.ToUpper(suffix))
}
