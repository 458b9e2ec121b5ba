package domain

import "errors"

// ErrInvalidTransition is returned when a status change violates the state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrUnknownStatus is returned when a status value is not part of the enum.
var ErrUnknownStatus = errors.New("unknown status")

// OrderStatus represents the fulfillment state of an order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not yet confirmed.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates the order has been accepted by the seller.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order has been handed to the carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the order reached the customer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusRefunded indicates the order was refunded. Terminal.
	OrderStatusRefunded OrderStatus = "refunded"
)

// forwardRank orders the happy path. Side-exit statuses are not ranked.
var forwardRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusConfirmed:  1,
	OrderStatusProcessing: 2,
	OrderStatusShipped:    3,
	OrderStatusDelivered:  4,
}

// IsValid checks if the order status is part of the enum.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted from s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid. Forward moves may
// skip intermediate states; backward moves are rejected because the tracking
// history is append-only and a regressing status would falsify it. Cancelled
// and refunded are reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !s.IsValid() || !next.IsValid() || s == next {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled || next == OrderStatusRefunded {
		return true
	}
	return forwardRank[next] > forwardRank[s]
}

// DefaultMessage returns the human-readable tracking message for a status.
func (s OrderStatus) DefaultMessage() string {
	switch s {
	case OrderStatusPending:
		return "Order has been placed"
	case OrderStatusConfirmed:
		return "Order has been confirmed"
	case OrderStatusProcessing:
		return "Order is being processed"
	case OrderStatusShipped:
		return "Order has been shipped"
	case OrderStatusDelivered:
		return "Order has been delivered"
	case OrderStatusCancelled:
		return "Order has been cancelled"
	case OrderStatusRefunded:
		return "Order has been refunded"
	default:
		return "Order status updated"
	}
}

// PaymentStatus represents the payment state of an order. It is tracked
// independently of the fulfillment status; neither machine drives the other.
type PaymentStatus string

const (
	// PaymentStatusPending indicates payment has not completed.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid indicates payment was captured.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed indicates the payment attempt failed. Terminal.
	PaymentStatusFailed PaymentStatus = "failed"
	// PaymentStatusRefunded indicates a captured payment was refunded. Terminal.
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// IsValid checks if the payment status is part of the enum.
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a payment status transition is valid.
func (p PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch p {
	case PaymentStatusPending:
		return next == PaymentStatusPaid || next == PaymentStatusFailed
	case PaymentStatusPaid:
		return next == PaymentStatusRefunded
	default:
		return false
	}
}
