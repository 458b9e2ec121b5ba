package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/features/orders/domain"
	"storefront-engine/internal/features/orders/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrEmptyOrder is returned when a checkout submission has no line items.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrEmptyNote is returned when a manual tracking note has no message.
var ErrEmptyNote = errors.New("tracking note message is required")

// OrderServiceImpl implements ports.OrderService. It owns the order lifecycle
// rules; persistence atomicity (status update + tracking append in one
// transaction) is delegated to the repository.
type OrderServiceImpl struct {
	repo     ports.OrderRepository
	notifier ports.StatusNotifier
	now      func() time.Time
}

// NewOrderService creates a new OrderServiceImpl. notifier may be nil when
// status notifications are disabled.
func NewOrderService(repo ports.OrderRepository, notifier ports.StatusNotifier) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock overrides the time source for deterministic tests.
func (s *OrderServiceImpl) WithClock(now func() time.Time) *OrderServiceImpl {
	s.now = now
	return s
}

// PlaceOrder creates an order from a completed checkout: validates the
// monetary breakdown, snapshots line items, and persists the order together
// with its first tracking entry.
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	now := s.now().UTC()
	orderID := uuid.New()

	order := &domain.Order{
		ID:              orderID,
		OrderNumber:     domain.NewOrderNumber(now),
		UserID:          input.UserID,
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
		Subtotal:        input.Subtotal,
		Tax:             input.Tax,
		Shipping:        input.Shipping,
		Discount:        input.Discount,
		Total:           input.Total,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		ShippingAddress: input.ShippingAddress,
		BillingAddress:  input.BillingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := order.ValidateAmounts(); err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %s has non-positive quantity", domain.ErrInvalidAmounts, item.ProductID)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: item %s has negative unit price", domain.ErrInvalidAmounts, item.ProductID)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ID:              uuid.New(),
			OrderID:         orderID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			LineTotal:       item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			ProductSnapshot: item.Snapshot,
		})
	}

	// The first tracking entry records order placement; it is persisted in
	// the same transaction as the order itself.
	order.Tracking = []domain.TrackingEntry{{
		OrderID:   orderID,
		Status:    domain.OrderStatusPending,
		Message:   domain.OrderStatusPending.DefaultMessage(),
		CreatedAt: now,
	}}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	logger.Get().Info("Order placed",
		zap.String("order_id", orderID.String()),
		zap.String("order_number", order.OrderNumber),
	)

	return order, nil
}

// GetOrder returns an order with items and tracking history.
func (s *OrderServiceImpl) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ChangeStatus validates and applies a fulfillment status transition. On
// success exactly one tracking entry is appended, in the same transaction as
// the status update. A request for the current status is a no-op: the order
// is returned unchanged with changed=false and nothing is recorded.
func (s *OrderServiceImpl) ChangeStatus(ctx context.Context, id uuid.UUID, newStatus domain.OrderStatus, trackingNumber string, actorID *uuid.UUID) (*domain.Order, bool, error) {
	if !newStatus.IsValid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, newStatus)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if order.Status == newStatus {
		return order, false, nil
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, false, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, newStatus)
	}

	now := s.now().UTC()

	change := ports.StatusChange{
		From:           order.Status,
		To:             newStatus,
		TrackingNumber: trackingNumber,
		Entry: domain.TrackingEntry{
			OrderID:   id,
			Status:    newStatus,
			Message:   newStatus.DefaultMessage(),
			CreatedBy: actorID,
			CreatedAt: now,
		},
	}
	if newStatus == domain.OrderStatusShipped && order.ShippedAt == nil {
		change.ShippedAt = &now
	}
	if newStatus == domain.OrderStatusDelivered && order.DeliveredAt == nil {
		change.DeliveredAt = &now
	}

	updated, err := s.repo.ApplyStatusChange(ctx, id, change)
	if err != nil {
		return nil, false, err
	}

	logger.Get().Info("Order status changed",
		zap.String("order_id", id.String()),
		zap.String("from", string(change.From)),
		zap.String("to", string(newStatus)),
	)

	if s.notifier != nil {
		s.notifier.NotifyStatusChange(ctx, updated, change.From)
	}

	return updated, true, nil
}

// ChangePaymentStatus validates and applies a payment status transition.
// Payment changes are tracked independently of fulfillment status and do not
// produce tracking entries.
func (s *OrderServiceImpl) ChangePaymentStatus(ctx context.Context, id uuid.UUID, newStatus domain.PaymentStatus) (*domain.Order, bool, error) {
	if !newStatus.IsValid() {
		return nil, false, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, newStatus)
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if order.PaymentStatus == newStatus {
		return order, false, nil
	}

	if !order.PaymentStatus.CanTransitionTo(newStatus) {
		return nil, false, fmt.Errorf("%w: payment %s -> %s", domain.ErrInvalidTransition, order.PaymentStatus, newStatus)
	}

	updated, err := s.repo.ApplyPaymentStatusChange(ctx, id, order.PaymentStatus, newStatus)
	if err != nil {
		return nil, false, err
	}

	logger.Get().Info("Order payment status changed",
		zap.String("order_id", id.String()),
		zap.String("from", string(order.PaymentStatus)),
		zap.String("to", string(newStatus)),
	)

	return updated, true, nil
}

// AddNote appends a manual tracking entry (e.g. a carrier handoff note)
// without changing the order's status.
func (s *OrderServiceImpl) AddNote(ctx context.Context, id uuid.UUID, input ports.NoteInput) (*domain.TrackingEntry, error) {
	if input.Message == "" {
		return nil, ErrEmptyNote
	}

	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := domain.TrackingEntry{
		OrderID:   id,
		Status:    order.Status,
		Message:   input.Message,
		Location:  input.Location,
		Metadata:  input.Metadata,
		CreatedBy: input.ActorID,
		CreatedAt: s.now().UTC(),
	}

	stored, err := s.repo.AppendTrackingEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to append tracking note: %w", err)
	}

	return stored, nil
}
