package entity

import "slices"

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted means the merchant accepted the order.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusPreparing means the kitchen started preparing the order.
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady means the order is waiting for pickup.
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusRejected means the merchant refused the order.
	OrderStatusRejected OrderStatus = "rejected"
	// OrderStatusCompleted means the customer picked the order up.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCanceled means the order was canceled before pickup.
	OrderStatusCanceled OrderStatus = "canceled"
)

// orderTransitions lists the legal next states for each state. Terminal states have none.
//
//nolint:gochecknoglobals
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusRejected, OrderStatusCanceled},
	OrderStatusAccepted:  {OrderStatusPreparing, OrderStatusCanceled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCanceled},
	OrderStatusReady:     {OrderStatusCompleted},
	OrderStatusRejected:  nil,
	OrderStatusCompleted: nil,
	OrderStatusCanceled:  nil,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no transition can leave this state.
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether next is a legal transition from s.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

// RequiresReason reports whether entering this state needs a reason.
func (s OrderStatus) RequiresReason() bool {
	return s == OrderStatusRejected
}

// Message returns the customer-facing text shown when an order enters this state.
func (s OrderStatus) Message() string {
	switch s {
	case OrderStatusPending:
		return "訂單已送出，等待店家確認"
	case OrderStatusAccepted:
		return "店家已接受您的訂單"
	case OrderStatusPreparing:
		return "您的餐點正在準備中"
	case OrderStatusReady:
		return "餐點已完成，請前往取餐"
	case OrderStatusRejected:
		return "很抱歉，店家無法接受此訂單"
	case OrderStatusCompleted:
		return "取餐完成，謝謝您的光臨"
	case OrderStatusCanceled:
		return "訂單已取消"
	default:
		return "訂單狀態已更新"
	}
}
