package postgres

import (
	"context"
	"time"

	"pickup/internal/domain/entity"
	"pickup/internal/domain/repository"
	"pickup/internal/errors"
	"pickup/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists the order, its lines and the initial status event.
// Callers wanting atomicity run it through the TransactionManager.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order, initial *entity.OrderStatusEvent) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}

		return dbError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, lineM := range orderM.Lines {
		order.Lines[i].ID = lineM.ID
		order.Lines[i].OrderID = orderM.ID
	}

	if initial == nil {
		return nil
	}
	initial.OrderID = orderM.ID

	return repo.AppendStatusEvent(ctx, initial)
}

// FindOrderByID retrieves an order with its lines.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "failed to find order by ID", "id = ?", id)
}

// FindOrderByIDForUpdate retrieves an order with SELECT ... FOR UPDATE. The lock is held
// until the surrounding transaction commits or rolls back.
func (repo *orderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, dbError(err, "failed to lock order")
	}

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderM.ID).
		Order("position ASC").
		Find(&orderM.Lines).Error; err != nil {
		return nil, dbError(err, "failed to load order lines")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrderByNumber retrieves an order by its external order number.
func (repo *orderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return repo.findOne(ctx, "failed to find order by number", "order_number = ?", orderNumber)
}

// FindOrderByIdempotencyKey retrieves the order created by a submission key.
func (repo *orderRepository) FindOrderByIdempotencyKey(ctx context.Context, key string) (*entity.Order, error) {
	return repo.findOne(ctx, "failed to find order by idempotency key", "idempotency_key = ?", key)
}

// FindOrdersByStore lists a store's orders newest first.
func (repo *orderRepository) FindOrdersByStore(ctx context.Context, storeSlug string, status *entity.OrderStatus, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Lines", orderLinesByPosition).
		Where("store_slug = ?", storeSlug)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, dbError(err, "failed to find orders by store")
	}

	orders := make([]*entity.Order, len(orderModels))
	for i, orderM := range orderModels {
		orders[i] = toOrderDomain(orderM)
	}

	return orders, nil
}

// UpdateOrderStatus writes the mutable status fields guarded by the optimistic version.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order, expectedVersion int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND version = ?", order.ID, expectedVersion).
		Updates(map[string]any{
			"status":             string(order.Status),
			"version":            order.Version,
			"actual_pickup_time": order.ActualPickupTime,
			"rejection_reason":   order.RejectionReason,
			"updated_at":         order.UpdatedAt,
		})
	if result.Error != nil {
		return dbError(result.Error, "failed to update order status")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Count(&count).Error; err != nil {
		return dbError(err, "failed to check order existence")
	}
	if count == 0 {
		return repository.ErrOrderNotFound
	}

	return repository.ErrOrderVersionConflict
}

// UpdatePaymentStatus records the payment collaborator's status.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return dbError(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendStatusEvent appends one entry to the order's status history.
func (repo *orderRepository) AppendStatusEvent(ctx context.Context, event *entity.OrderStatusEvent) error {
	eventM := fromStatusEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return dbError(err, "failed to append order status event")
	}

	event.ID = eventM.ID

	return nil
}

// FindStatusEvents returns the order's status history, oldest first.
func (repo *orderRepository) FindStatusEvents(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusEvent, error) {
	var eventModels []*model.OrderStatusEventModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, dbError(err, "failed to find order status events")
	}

	events := make([]*entity.OrderStatusEvent, len(eventModels))
	for i, eventM := range eventModels {
		events[i] = toStatusEventDomain(eventM)
	}

	return events, nil
}

func (repo *orderRepository) findOne(ctx context.Context, failure, query string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines", orderLinesByPosition).
		Where(query, args...).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, dbError(err, failure)
	}

	return toOrderDomain(&orderM), nil
}

func orderLinesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Mapper functions

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, len(data.Lines))
	for i := range data.Lines {
		lineM := &data.Lines[i]
		lines[i] = &entity.OrderLine{
			ID:           lineM.ID,
			OrderID:      lineM.OrderID,
			ItemID:       lineM.ItemID,
			Name:         lineM.Name,
			Quantity:     lineM.Quantity,
			UnitPrice:    lineM.UnitPrice,
			LineTotal:    lineM.LineTotal,
			Instructions: lineM.Instructions,
		}
	}

	return &entity.Order{
		ID:          data.ID,
		OrderNumber: data.OrderNumber,
		StoreSlug:   data.StoreSlug,
		Contact: entity.ContactProfile{
			Name:             data.ContactName,
			Phone:            data.ContactPhone,
			CustomerID:       data.CustomerID,
			MarketingConsent: data.MarketingConsent,
		},
		IsGuestOrder:     data.IsGuestOrder,
		Lines:            lines,
		TotalAmount:      data.TotalAmount,
		DiscountAmount:   data.DiscountAmount,
		FinalAmount:      data.FinalAmount,
		PaymentMethod:    data.PaymentMethod,
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		PickupTime:       data.PickupTime,
		Status:           entity.OrderStatus(data.Status),
		ActualPickupTime: data.ActualPickupTime,
		RejectionReason:  data.RejectionReason,
		IdempotencyKey:   data.IdempotencyKey,
		Version:          data.Version,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	lines := make([]model.OrderLineModel, len(data.Lines))
	for i, line := range data.Lines {
		lines[i] = model.OrderLineModel{
			ID:           line.ID,
			OrderID:      data.ID,
			Position:     i,
			ItemID:       line.ItemID,
			Name:         line.Name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.LineTotal,
			Instructions: line.Instructions,
		}
	}

	return &model.OrderModel{
		ID:               data.ID,
		OrderNumber:      data.OrderNumber,
		StoreSlug:        data.StoreSlug,
		ContactName:      data.Contact.Name,
		ContactPhone:     data.Contact.Phone,
		CustomerID:       data.Contact.CustomerID,
		MarketingConsent: data.Contact.MarketingConsent,
		IsGuestOrder:     data.IsGuestOrder,
		TotalAmount:      data.TotalAmount,
		DiscountAmount:   data.DiscountAmount,
		FinalAmount:      data.FinalAmount,
		PaymentMethod:    data.PaymentMethod,
		PaymentStatus:    string(data.PaymentStatus),
		PickupTime:       data.PickupTime,
		Status:           string(data.Status),
		ActualPickupTime: data.ActualPickupTime,
		RejectionReason:  data.RejectionReason,
		IdempotencyKey:   data.IdempotencyKey,
		Version:          data.Version,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Lines:            lines,
	}
}

func toStatusEventDomain(data *model.OrderStatusEventModel) *entity.OrderStatusEvent {
	if data == nil {
		return nil
	}

	var previous *entity.OrderStatus
	if data.PreviousStatus != nil {
		status := entity.OrderStatus(*data.PreviousStatus)
		previous = &status
	}

	return &entity.OrderStatusEvent{
		ID:             data.ID,
		OrderID:        data.OrderID,
		PreviousStatus: previous,
		NewStatus:      entity.OrderStatus(data.NewStatus),
		Reason:         data.Reason,
		ChangedBy:      data.ChangedBy,
		ChangedAt:      data.ChangedAt,
	}
}

func fromStatusEventDomain(data *entity.OrderStatusEvent) *model.OrderStatusEventModel {
	if data == nil {
		return nil
	}

	var previous *string
	if data.PreviousStatus != nil {
		status := string(*data.PreviousStatus)
		previous = &status
	}

	return &model.OrderStatusEventModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		PreviousStatus: previous,
		NewStatus:      string(data.NewStatus),
		Reason:         data.Reason,
		ChangedBy:      data.ChangedBy,
		ChangedAt:      data.ChangedAt,
	}
}
