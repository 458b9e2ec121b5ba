package domain

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmounts is returned when an order's monetary breakdown is inconsistent.
var ErrInvalidAmounts = errors.New("invalid order amounts")

// AddressSnapshot is an immutable copy of a shipping or billing address,
// captured at checkout. It is stored as a JSON blob, never FK'd to a live
// address record, so historical orders keep their original destination.
type AddressSnapshot struct {
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// ProductSnapshot is an immutable copy of a product's display fields captured
// at order-item creation. It must never be refreshed from the live product
// record, even if the product is edited or deleted.
type ProductSnapshot struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	CategoryID  string          `json:"category_id,omitempty"`
	SellerID    string          `json:"seller_id,omitempty"`
}

// OrderItem is a line item. Unit price and snapshot are written once at
// purchase time and never mutated.
type OrderItem struct {
	// ID is the unique identifier of the line item.
	ID uuid.UUID `json:"id"`
	// OrderID references the owning order.
	OrderID uuid.UUID `json:"order_id"`
	// ProductID references the live product in the catalog (external system).
	ProductID string `json:"product_id"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// UnitPrice is the price per unit at time of purchase.
	UnitPrice decimal.Decimal `json:"unit_price"`
	// LineTotal is quantity x unit price at time of purchase.
	LineTotal decimal.Decimal `json:"line_total"`
	// ProductSnapshot is the product's display state at time of purchase.
	ProductSnapshot ProductSnapshot `json:"product_snapshot"`
}

// Order is the central transactional entity. After creation only status,
// payment status and tracking number are mutated; orders are never deleted,
// only status-transitioned.
type Order struct {
	// ID is the unique identifier of the order.
	ID uuid.UUID `json:"id"`
	// OrderNumber is the human-readable unique order reference.
	OrderNumber string `json:"order_number"`
	// UserID is the owning user; nil for guest checkout.
	UserID *uuid.UUID `json:"user_id,omitempty"`
	// GuestName is the contact name for guest checkout.
	GuestName string `json:"guest_name,omitempty"`
	// GuestEmail is the contact email for guest checkout.
	GuestEmail string `json:"guest_email,omitempty"`
	// GuestPhone is the contact phone for guest checkout.
	GuestPhone string `json:"guest_phone,omitempty"`

	// Subtotal is the sum of line totals.
	Subtotal decimal.Decimal `json:"subtotal"`
	// Tax is the tax charged on the order.
	Tax decimal.Decimal `json:"tax"`
	// Shipping is the shipping cost charged on the order.
	Shipping decimal.Decimal `json:"shipping"`
	// Discount is the discount applied to the order.
	Discount decimal.Decimal `json:"discount"`
	// Total is subtotal + tax + shipping - discount.
	Total decimal.Decimal `json:"total"`

	// Status is the fulfillment state.
	Status OrderStatus `json:"status"`
	// PaymentStatus is the payment state, tracked independently of Status.
	PaymentStatus PaymentStatus `json:"payment_status"`

	// ShippingAddress is the immutable destination snapshot.
	ShippingAddress AddressSnapshot `json:"shipping_address"`
	// BillingAddress is the immutable billing snapshot.
	BillingAddress AddressSnapshot `json:"billing_address"`

	// TrackingNumber is the carrier tracking reference, set when shipped.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// ShippedAt is set when the order first transitions to shipped.
	ShippedAt *time.Time `json:"shipped_at,omitempty"`
	// DeliveredAt is set when the order first transitions to delivered.
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Items are the order's line items, created atomically with the order.
	Items []OrderItem `json:"items,omitempty"`
	// Tracking is the append-only audit trail, ordered by (created_at, seq).
	Tracking []TrackingEntry `json:"tracking_history,omitempty"`
}

// ValidateAmounts checks that all monetary figures are non-negative and that
// total = subtotal + tax + shipping - discount.
func (o *Order) ValidateAmounts() error {
	for name, amount := range map[string]decimal.Decimal{
		"subtotal": o.Subtotal,
		"tax":      o.Tax,
		"shipping": o.Shipping,
		"discount": o.Discount,
		"total":    o.Total,
	} {
		if amount.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidAmounts, name)
		}
	}

	expected := o.Subtotal.Add(o.Tax).Add(o.Shipping).Sub(o.Discount)
	if !o.Total.Equal(expected) {
		return fmt.Errorf("%w: total %s does not match subtotal + tax + shipping - discount = %s",
			ErrInvalidAmounts, o.Total, expected)
	}
	return nil
}

// NewOrderNumber generates a human-readable unique order reference,
// e.g. "ORD-20260310-4F7K2Q".
func NewOrderNumber(now time.Time) string {
	const alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	suffix := make([]byte, 6)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			// crypto/rand failure is unrecoverable for id generation
			panic(err)
		}
		suffix[i] = alphabet[n.Int64()]
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}
