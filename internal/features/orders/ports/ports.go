package ports

import (
	"context"
	"errors"
	"time"

	"storefront-engine/internal/features/orders/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderNotFound is returned when the order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrConflict is returned when a concurrent writer changed the order's
	// status between read and commit. The caller should refetch and retry.
	ErrConflict = errors.New("order was modified concurrently")
)

// StatusChange carries the fields of an accepted status transition to the
// repository. The repository must apply the update and append the tracking
// entry in one atomic transaction, validating From against the persisted row.
type StatusChange struct {
	// From is the status the transition was validated against.
	From domain.OrderStatus
	// To is the new status.
	To domain.OrderStatus
	// ShippedAt is set when the transition first reaches shipped.
	ShippedAt *time.Time
	// DeliveredAt is set when the transition first reaches delivered.
	DeliveredAt *time.Time
	// TrackingNumber optionally sets the carrier reference; empty leaves it untouched.
	TrackingNumber string
	// Entry is the tracking entry to append with the update.
	Entry domain.TrackingEntry
}

// OrderRepository defines the secondary port for order persistence.
type OrderRepository interface {
	// Create persists an order, its items and its first tracking entry atomically.
	Create(ctx context.Context, order *domain.Order) error
	// GetByID returns the order with items and tracking history ordered by
	// (created_at, seq) ascending, or ErrOrderNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ApplyStatusChange atomically updates the order's status and appends the
	// tracking entry. Returns ErrConflict if the persisted status no longer
	// equals change.From, ErrOrderNotFound if the order does not exist.
	ApplyStatusChange(ctx context.Context, orderID uuid.UUID, change StatusChange) (*domain.Order, error)
	// ApplyPaymentStatusChange atomically updates the payment status with the
	// same compare-and-set semantics. No tracking entry is written.
	ApplyPaymentStatusChange(ctx context.Context, orderID uuid.UUID, from, to domain.PaymentStatus) (*domain.Order, error)
	// AppendTrackingEntry appends a manual tracking note without touching the
	// order's status. The stored entry (with assigned seq) is returned.
	AppendTrackingEntry(ctx context.Context, entry domain.TrackingEntry) (*domain.TrackingEntry, error)
}

// PlaceOrderItem is one line item of a checkout submission.
type PlaceOrderItem struct {
	ProductID string                 `json:"product_id"`
	Quantity  int                    `json:"quantity"`
	UnitPrice decimal.Decimal        `json:"unit_price"`
	Snapshot  domain.ProductSnapshot `json:"product_snapshot"`
}

// PlaceOrderInput is a completed checkout ready to become an order.
type PlaceOrderInput struct {
	UserID          *uuid.UUID             `json:"user_id,omitempty"`
	GuestName       string                 `json:"guest_name,omitempty"`
	GuestEmail      string                 `json:"guest_email,omitempty"`
	GuestPhone      string                 `json:"guest_phone,omitempty"`
	Subtotal        decimal.Decimal        `json:"subtotal"`
	Tax             decimal.Decimal        `json:"tax"`
	Shipping        decimal.Decimal        `json:"shipping"`
	Discount        decimal.Decimal        `json:"discount"`
	Total           decimal.Decimal        `json:"total"`
	ShippingAddress domain.AddressSnapshot `json:"shipping_address"`
	BillingAddress  domain.AddressSnapshot `json:"billing_address"`
	Items           []PlaceOrderItem       `json:"items"`
}

// NoteInput is a manual tracking annotation from an operator.
type NoteInput struct {
	Message  string                  `json:"message"`
	Location string                  `json:"location,omitempty"`
	Metadata domain.TrackingMetadata `json:"metadata,omitempty"`
	ActorID  *uuid.UUID              `json:"actor_id,omitempty"`
}

// OrderService defines the primary port for the order lifecycle.
type OrderService interface {
	// PlaceOrder creates an order from a completed checkout.
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	// GetOrder returns an order with items and tracking history.
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// ChangeStatus applies a fulfillment status transition. The returned bool
	// is false when the request was a no-op (same status, nothing recorded).
	ChangeStatus(ctx context.Context, id uuid.UUID, newStatus domain.OrderStatus, trackingNumber string, actorID *uuid.UUID) (*domain.Order, bool, error)
	// ChangePaymentStatus applies a payment status transition.
	ChangePaymentStatus(ctx context.Context, id uuid.UUID, newStatus domain.PaymentStatus) (*domain.Order, bool, error)
	// AddNote appends a manual tracking entry without changing the status.
	AddNote(ctx context.Context, id uuid.UUID, input NoteInput) (*domain.TrackingEntry, error)
}

// StatusNotifier is notified after a status transition has committed.
// Notification is best-effort; failures never roll back the transition.
type StatusNotifier interface {
	NotifyStatusChange(ctx context.Context, order *domain.Order, previous domain.OrderStatus)
}
