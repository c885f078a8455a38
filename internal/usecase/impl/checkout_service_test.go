package impl

import (
	"context"
	"testing"
	"time"

	"pickup/internal/domain/entity"
	domainerrors "pickup/internal/domain/errors"
	"pickup/internal/domain/repository"
	"pickup/internal/domain/service"
	"pickup/internal/errors"
	mockRepo "pickup/internal/mocks/repository"
	mockSvc "pickup/internal/mocks/service"
	"pickup/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service   usecase.CheckoutUsecase
	tx        txFixtures
	orderRepo *mockRepo.MockOrderRepository
	cartRepo  *mockRepo.MockCartRepository
	phone     *mockSvc.MockPhoneNormalizer
	publisher *mockSvc.MockEventPublisher
	now       time.Time
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	tx := newTxFixtures(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	phone := mockSvc.NewMockPhoneNormalizer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	svc := NewCheckoutService(CheckoutServiceParams{
		TxManager: tx.txManager,
		OrderRepo: orderRepo,
		CartRepo:  cartRepo,
		Phone:     phone,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	impl := svc.(*checkoutService)
	impl.now = func() time.Time { return now }
	impl.newBackOff = zeroBackOff

	return checkoutServiceFixtures{
		service:   svc,
		tx:        tx,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		phone:     phone,
		publisher: publisher,
		now:       now,
	}
}

func newFilledCart(now time.Time, items ...*entity.CatalogItem) *entity.Cart {
	cart := entity.NewCart("tea-house")
	for _, item := range items {
		cart.AddOrIncrement(item, 1, "", now)
	}

	return cart
}

func guestInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Contact: entity.ContactProfile{Name: " Amy ", Phone: "0912345678"},
	}
}

func TestCheckoutService_Assemble(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		fx := createTestCheckoutService(t)

		_, err := fx.service.Assemble(entity.NewCart("tea-house"), guestInput(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("blank name", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		input := guestInput()
		input.Contact.Name = "   "

		_, err := fx.service.Assemble(newFilledCart(fx.now, newCatalogItem("tea-house", 100)), input, nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidContact)
	})

	t.Run("invalid phone", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.phone.EXPECT().Normalize("0912345678").Return("", errors.New("not a number"))

		_, err := fx.service.Assemble(newFilledCart(fx.now, newCatalogItem("tea-house", 100)), guestInput(), nil)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidContact)
	})

	t.Run("guest submission carries no prices", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
		item := newCatalogItem("tea-house", 100)
		cart := newFilledCart(fx.now, item)
		cart.Lines[0].Instructions = "no sugar"

		submission, err := fx.service.Assemble(cart, guestInput(), nil)
		require.NoError(t, err)
		assert.True(t, submission.IsGuestOrder)
		assert.Equal(t, "Amy", submission.Contact.Name)
		assert.Equal(t, "+886912345678", submission.Contact.Phone)
		assert.Nil(t, submission.Contact.CustomerID)
		assert.Equal(t, "cash", submission.PaymentMethod)
		assert.NotEmpty(t, submission.IdempotencyKey)
		assert.Equal(t, []*usecase.SubmissionLine{{ItemID: item.ID, Quantity: 1, Instructions: "no sugar"}}, submission.Lines)
	})

	t.Run("guest naming a customer is forbidden", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
		input := guestInput()
		other := uuid.New()
		input.Contact.CustomerID = &other

		_, err := fx.service.Assemble(newFilledCart(fx.now, newCatalogItem("tea-house", 100)), input, nil)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("contact of another customer is forbidden", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
		input := guestInput()
		other := uuid.New()
		input.Contact.CustomerID = &other
		session := entity.NewSession(uuid.New(), []string{"customer"})

		_, err := fx.service.Assemble(newFilledCart(fx.now, newCatalogItem("tea-house", 100)), input, session)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("session customer is attached", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
		session := entity.NewSession(uuid.New(), []string{"customer"})
		input := guestInput()
		input.IdempotencyKey = "client-key"

		submission, err := fx.service.Assemble(newFilledCart(fx.now, newCatalogItem("tea-house", 100)), input, session)
		require.NoError(t, err)
		assert.False(t, submission.IsGuestOrder)
		require.NotNil(t, submission.Contact.CustomerID)
		assert.Equal(t, session.CustomerID, *submission.Contact.CustomerID)
		assert.Equal(t, "client-key", submission.IdempotencyKey)
	})
}

func TestCheckoutService_CreateOrder_PricesFromCatalog(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	discounted := decimal.NewFromInt(80)
	tea := newCatalogItem("tea-house", 100)
	tea.DiscountedPrice = &discounted
	cake := newCatalogItem("tea-house", 50)

	submission := &usecase.OrderSubmission{
		StoreSlug:      "tea-house",
		Contact:        entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
		IsGuestOrder:   true,
		Lines:          []*usecase.SubmissionLine{{ItemID: tea.ID, Quantity: 2}, {ItemID: cake.ID, Quantity: 1}},
		PaymentMethod:  "cash",
		IdempotencyKey: "key-1",
	}

	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "key-1").Return(nil, repository.ErrOrderNotFound)
	fx.tx.runTx()
	fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{tea.ID, cake.ID}).Return([]*entity.CatalogItem{cake, tea}, nil)

	var initial *entity.OrderStatusEvent
	fx.tx.txOrders.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order"), mock.AnythingOfType("*entity.OrderStatusEvent")).
		Run(func(_ context.Context, _ *entity.Order, event *entity.OrderStatusEvent) {
			initial = event
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventCreated && event.Status == "pending"
		})).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, submission)
	require.NoError(t, err)

	assert.Regexp(t, `^ORD-20260301-[0-9A-F]{8}$`, order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "250", order.TotalAmount.String())
	assert.Equal(t, "210", order.FinalAmount.String())
	assert.Equal(t, "40", order.DiscountAmount.String())
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "80", order.Lines[0].UnitPrice.String())
	assert.Equal(t, "160", order.Lines[0].LineTotal.String())

	require.NotNil(t, initial)
	assert.Nil(t, initial.PreviousStatus)
	assert.Equal(t, entity.OrderStatusPending, initial.NewStatus)
	assert.Equal(t, "guest", initial.ChangedBy)
}

func TestCheckoutService_CreateOrder_ReplayReturnsExistingOrder(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	itemID := uuid.New()
	existing := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-AAAAAAAA",
		StoreSlug:   "tea-house",
		Contact:     entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
		Lines:       []*entity.OrderLine{{ItemID: itemID, Quantity: 2}},
		Status:      entity.OrderStatusAccepted,
	}
	submission := &usecase.OrderSubmission{
		StoreSlug:      "tea-house",
		Contact:        entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
		Lines:          []*usecase.SubmissionLine{{ItemID: itemID, Quantity: 2}},
		IdempotencyKey: "key-1",
	}

	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "key-1").Return(existing, nil)

	order, err := fx.service.CreateOrder(ctx, submission)
	require.NoError(t, err)
	assert.Same(t, existing, order)
}

func TestCheckoutService_CreateOrder_ReusedKeyIsRejected(t *testing.T) {
	itemID := uuid.New()
	customerID := uuid.New()
	submission := func() *usecase.OrderSubmission {
		return &usecase.OrderSubmission{
			StoreSlug:      "noodle-bar",
			Contact:        entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
			Lines:          []*usecase.SubmissionLine{{ItemID: itemID, Quantity: 1}},
			IdempotencyKey: "k1",
		}
	}
	stored := func() *entity.Order {
		return &entity.Order{
			ID:          uuid.New(),
			OrderNumber: "ORD-20260301-BBBBBBBB",
			StoreSlug:   "noodle-bar",
			Contact:     entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
			Lines:       []*entity.OrderLine{{ItemID: itemID, Quantity: 1}},
		}
	}

	tests := []struct {
		name   string
		mutate func(order *entity.Order)
	}{
		{
			name:   "another store",
			mutate: func(order *entity.Order) { order.StoreSlug = "tea-house" },
		},
		{
			name:   "another phone",
			mutate: func(order *entity.Order) { order.Contact = entity.ContactProfile{Name: "Bob", Phone: "+886900000000"} },
		},
		{
			name:   "placed by a customer",
			mutate: func(order *entity.Order) { order.Contact.CustomerID = &customerID },
		},
		{
			name:   "different lines",
			mutate: func(order *entity.Order) { order.Lines[0].Quantity = 3 },
		},
		{
			name: "extra line",
			mutate: func(order *entity.Order) {
				order.Lines = append(order.Lines, &entity.OrderLine{ItemID: uuid.New(), Quantity: 1})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			ctx := context.Background()

			existing := stored()
			tt.mutate(existing)
			fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "k1").Return(existing, nil)

			order, err := fx.service.CreateOrder(ctx, submission())
			assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyReused)
			assert.Nil(t, order)
		})
	}
}

// Another store's order stored under the same key must neither be returned nor clear this cart.
func TestCheckoutService_Checkout_ReusedKeyKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	bobsOrder := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-CCCCCCCC",
		StoreSlug:   "noodle-bar",
		Contact:     entity.ContactProfile{Name: "Bob", Phone: "+886900000000"},
		Lines:       []*entity.OrderLine{{ItemID: uuid.New(), Quantity: 1}},
	}
	input := guestInput()
	input.IdempotencyKey = "k1"

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(newFilledCart(fx.now, item), nil)
	fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "k1").Return(bobsOrder, nil).Once()

	result, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", input, nil)
	assert.ErrorIs(t, err, domainerrors.ErrIdempotencyKeyReused)
	assert.Nil(t, result)
	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_CreateOrder_CatalogRejections(t *testing.T) {
	ctx := context.Background()

	soldOut := newCatalogItem("tea-house", 100)
	soldOut.IsAvailable = false
	stock := 1
	lowStock := newCatalogItem("tea-house", 100)
	lowStock.Stock = &stock
	foreign := newCatalogItem("noodle-bar", 100)

	tests := []struct {
		name    string
		item    *entity.CatalogItem
		found   []*entity.CatalogItem
		wantErr error
	}{
		{name: "missing item", item: newCatalogItem("tea-house", 1), found: nil, wantErr: domainerrors.ErrCatalogItemNotFound},
		{name: "unavailable item", item: soldOut, found: []*entity.CatalogItem{soldOut}, wantErr: domainerrors.ErrItemUnavailable},
		{name: "insufficient stock", item: lowStock, found: []*entity.CatalogItem{lowStock}, wantErr: domainerrors.ErrInsufficientStock},
		{name: "item of another store", item: foreign, found: []*entity.CatalogItem{foreign}, wantErr: domainerrors.ErrItemStoreMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			submission := &usecase.OrderSubmission{
				StoreSlug:      "tea-house",
				Lines:          []*usecase.SubmissionLine{{ItemID: tt.item.ID, Quantity: 2}},
				IdempotencyKey: "key-1",
			}

			fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "key-1").Return(nil, repository.ErrOrderNotFound)
			fx.tx.runTx()
			fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{tt.item.ID}).Return(tt.found, nil)

			_, err := fx.service.CreateOrder(ctx, submission)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCheckoutService_CreateOrder_RegeneratesCollidingNumber(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	submission := &usecase.OrderSubmission{
		StoreSlug:      "tea-house",
		Lines:          []*usecase.SubmissionLine{{ItemID: item.ID, Quantity: 1}},
		IdempotencyKey: "key-1",
	}

	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "key-1").Return(nil, repository.ErrOrderNotFound).Times(2)
	fx.tx.runTx().Times(2)
	fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{item.ID}).Return([]*entity.CatalogItem{item}, nil).Times(2)

	var numbers []string
	fx.tx.txOrders.EXPECT().
		CreateOrder(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, order *entity.Order, _ *entity.OrderStatusEvent) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Return(repository.ErrDuplicateOrder).Once()
	fx.tx.txOrders.EXPECT().
		CreateOrder(ctx, mock.Anything, mock.Anything).
		Run(func(_ context.Context, order *entity.Order, _ *entity.OrderStatusEvent) {
			numbers = append(numbers, order.OrderNumber)
		}).
		Return(nil).Once()
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	order, err := fx.service.CreateOrder(ctx, submission)
	require.NoError(t, err)
	require.Len(t, numbers, 2)
	assert.NotEqual(t, numbers[0], numbers[1])
	assert.Equal(t, numbers[1], order.OrderNumber)
}

func TestCheckoutService_CreateOrder_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	submission := &usecase.OrderSubmission{
		StoreSlug:      "tea-house",
		Lines:          []*usecase.SubmissionLine{{ItemID: item.ID, Quantity: 1}},
		IdempotencyKey: "key-1",
	}

	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, "key-1").Return(nil, repository.ErrOrderNotFound)
	fx.tx.runTx()
	fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{item.ID}).Return([]*entity.CatalogItem{item}, nil)
	fx.tx.txOrders.EXPECT().CreateOrder(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker unavailable"))

	order, err := fx.service.CreateOrder(ctx, submission)
	require.NoError(t, err)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestCheckoutService_Checkout_ClearsOnlyOnSuccess(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	cart := newFilledCart(fx.now, item)

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(cart, nil)
	fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, mock.Anything).Return(nil, repository.ErrOrderNotFound)
	fx.tx.runTx()
	fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{item.ID}).Return([]*entity.CatalogItem{item}, nil)
	fx.tx.txOrders.EXPECT().CreateOrder(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Delete(ctx, "guest:abc", "tea-house").Return(nil)

	result, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", guestInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, result.Order.OrderNumber, result.OrderNumber)
	assert.True(t, result.Order.IsGuestOrder)
}

func TestCheckoutService_Checkout_FailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	item.IsAvailable = false

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(newFilledCart(fx.now, item), nil)
	fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, mock.Anything).Return(nil, repository.ErrOrderNotFound)
	fx.tx.runTx()
	fx.tx.txCatalog.EXPECT().FindItemsByIDs(ctx, []uuid.UUID{item.ID}).Return([]*entity.CatalogItem{item}, nil)

	_, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", guestInput(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrItemUnavailable)
	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(entity.NewCart("tea-house"), nil)

	_, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", guestInput(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

// The backend commits the order but the response is lost; the retry carries the same
// key and must come back with the order from the first attempt.
func TestCheckoutService_Checkout_RetryAfterLostResponseReusesKey(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)
	committed := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260301-0A1B2C3D",
		StoreSlug:   "tea-house",
		Contact:     entity.ContactProfile{Name: "Amy", Phone: "+886912345678"},
		Lines:       []*entity.OrderLine{{ItemID: item.ID, Quantity: 1}},
		Status:      entity.OrderStatusPending,
	}

	var keys []string
	captureKey := func(_ context.Context, key string) { keys = append(keys, key) }

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(newFilledCart(fx.now, item), nil)
	fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, mock.Anything).Run(captureKey).Return(nil, repository.ErrOrderNotFound).Once()
	fx.tx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.Mark(context.DeadlineExceeded, domainerrors.ErrTransientBackend)).Once()
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, mock.Anything).Run(captureKey).Return(committed, nil).Once()
	fx.cartRepo.EXPECT().Delete(ctx, "guest:abc", "tea-house").Return(nil)

	result, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", guestInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, committed.OrderNumber, result.OrderNumber)
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
}

func TestCheckoutService_Checkout_GivesUpAfterMaxRetries(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	item := newCatalogItem("tea-house", 100)

	fx.cartRepo.EXPECT().Load(ctx, "guest:abc", "tea-house").Return(newFilledCart(fx.now, item), nil)
	fx.phone.EXPECT().Normalize("0912345678").Return("+886912345678", nil)
	fx.orderRepo.EXPECT().FindOrderByIdempotencyKey(ctx, mock.Anything).Return(nil, domainerrors.ErrTransientBackend).Times(3)

	_, err := fx.service.Checkout(ctx, "guest:abc", "tea-house", guestInput(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrTransientBackend)
	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}
