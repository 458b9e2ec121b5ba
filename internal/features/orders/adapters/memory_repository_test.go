package adapters

import (
	"context"
	"testing"
	"time"

	"storefront-engine/internal/features/orders/domain"
	"storefront-engine/internal/features/orders/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, repo *MemoryOrderRepository) *domain.Order {
	t.Helper()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   domain.NewOrderNumber(now),
		GuestName:     "Rohan Mehta",
		GuestEmail:    "rohan@example.com",
		Subtotal:      decimal.NewFromInt(900),
		Tax:           decimal.NewFromInt(162),
		Shipping:      decimal.NewFromInt(100),
		Discount:      decimal.Zero,
		Total:         decimal.NewFromInt(1162),
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		ShippingAddress: domain.AddressSnapshot{
			City: "Pune", State: "Maharashtra", Country: "India", PostalCode: "411001",
		},
		Items: []domain.OrderItem{{
			ID:        uuid.New(),
			ProductID: "prod-7",
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(900),
			LineTotal: decimal.NewFromInt(900),
			ProductSnapshot: domain.ProductSnapshot{
				Name: "Ceramic Teapot", Price: decimal.NewFromInt(900), SKU: "CTP-7",
			},
		}},
		Tracking: []domain.TrackingEntry{{
			Status:    domain.OrderStatusPending,
			Message:   domain.OrderStatusPending.DefaultMessage(),
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.Tracking[0].OrderID = order.ID

	require.NoError(t, repo.Create(context.Background(), order))
	return order
}

// TestMemoryRepository_CreateAssignsSeq verifies Create assigns sequence
// numbers to the initial tracking entries.
func TestMemoryRepository_CreateAssignsSeq(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)

	require.Len(t, order.Tracking, 1)
	assert.Equal(t, int64(1), order.Tracking[0].Seq)

	got, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	require.Len(t, got.Items, 1)
}

// TestMemoryRepository_GetByID_NotFound verifies the sentinel error.
func TestMemoryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}

// TestMemoryRepository_ApplyStatusChange_CAS verifies that a change validated
// against a stale status is rejected, and that the update and the tracking
// entry are applied together.
func TestMemoryRepository_ApplyStatusChange_CAS(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)
	ctx := context.Background()

	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	updated, err := repo.ApplyStatusChange(ctx, order.ID, ports.StatusChange{
		From: domain.OrderStatusPending,
		To:   domain.OrderStatusShipped,
		Entry: domain.TrackingEntry{
			OrderID:   order.ID,
			Status:    domain.OrderStatusShipped,
			Message:   domain.OrderStatusShipped.DefaultMessage(),
			CreatedAt: now,
		},
		ShippedAt:      &now,
		TrackingNumber: "AWB777",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusShipped, updated.Status)
	require.NotNil(t, updated.ShippedAt)
	assert.Equal(t, "AWB777", updated.TrackingNumber)
	require.Len(t, updated.Tracking, 2)

	// Same predicate again: the stored status is no longer pending.
	_, err = repo.ApplyStatusChange(ctx, order.ID, ports.StatusChange{
		From: domain.OrderStatusPending,
		To:   domain.OrderStatusCancelled,
		Entry: domain.TrackingEntry{
			OrderID:   order.ID,
			Status:    domain.OrderStatusCancelled,
			CreatedAt: now,
		},
	})
	assert.ErrorIs(t, err, ports.ErrConflict)

	// The failed attempt wrote nothing.
	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
	assert.Len(t, got.Tracking, 2)
}

// TestMemoryRepository_ShippedAtSetOnce verifies shipped_at is never
// overwritten once set.
func TestMemoryRepository_ShippedAtSetOnce(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)
	ctx := context.Background()

	first := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	_, err := repo.ApplyStatusChange(ctx, order.ID, ports.StatusChange{
		From:      domain.OrderStatusPending,
		To:        domain.OrderStatusShipped,
		ShippedAt: &first,
		Entry: domain.TrackingEntry{
			OrderID: order.ID, Status: domain.OrderStatusShipped, CreatedAt: first,
		},
	})
	require.NoError(t, err)

	second := first.Add(48 * time.Hour)
	updated, err := repo.ApplyStatusChange(ctx, order.ID, ports.StatusChange{
		From:      domain.OrderStatusShipped,
		To:        domain.OrderStatusDelivered,
		ShippedAt: &second,
		Entry: domain.TrackingEntry{
			OrderID: order.ID, Status: domain.OrderStatusDelivered, CreatedAt: second,
		},
	})
	require.NoError(t, err)
	assert.True(t, updated.ShippedAt.Equal(first))
}

// TestMemoryRepository_TrackingOrder verifies entries are returned sorted by
// (created_at, seq), with seq breaking ties within the same instant.
func TestMemoryRepository_TrackingOrder(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)
	ctx := context.Background()

	at := order.CreatedAt.Add(time.Hour)
	for _, msg := range []string{"first note", "second note", "third note"} {
		_, err := repo.AppendTrackingEntry(ctx, domain.TrackingEntry{
			OrderID:   order.ID,
			Status:    domain.OrderStatusPending,
			Message:   msg,
			CreatedAt: at,
		})
		require.NoError(t, err)
	}

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Tracking, 4)

	messages := make([]string, 0, 3)
	for _, e := range got.Tracking[1:] {
		messages = append(messages, e.Message)
	}
	assert.Equal(t, []string{"first note", "second note", "third note"}, messages)

	for i := 1; i < len(got.Tracking); i++ {
		assert.Greater(t, got.Tracking[i].Seq, got.Tracking[i-1].Seq)
	}
}

// TestMemoryRepository_ReturnsCopies verifies mutating a returned order does
// not leak into the store.
func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)

	got.Status = domain.OrderStatusCancelled
	got.Tracking[0].Message = "tampered"
	got.Items[0].ProductSnapshot.Name = "tampered"

	fresh, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, fresh.Status)
	assert.Equal(t, domain.OrderStatusPending.DefaultMessage(), fresh.Tracking[0].Message)
	assert.Equal(t, "Ceramic Teapot", fresh.Items[0].ProductSnapshot.Name)
}

// TestMemoryRepository_ApplyPaymentStatusChange verifies CAS semantics and
// that no tracking entry is written for payment changes.
func TestMemoryRepository_ApplyPaymentStatusChange(t *testing.T) {
	repo := NewMemoryOrderRepository()
	order := seedOrder(t, repo)
	ctx := context.Background()

	updated, err := repo.ApplyPaymentStatusChange(ctx, order.ID, domain.PaymentStatusPending, domain.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
	assert.Len(t, updated.Tracking, 1)

	_, err = repo.ApplyPaymentStatusChange(ctx, order.ID, domain.PaymentStatusPending, domain.PaymentStatusFailed)
	assert.ErrorIs(t, err, ports.ErrConflict)

	_, err = repo.ApplyPaymentStatusChange(ctx, uuid.New(), domain.PaymentStatusPending, domain.PaymentStatusPaid)
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}

// TestMemoryRepository_AppendTrackingEntry_NotFound verifies notes require an
// existing order.
func TestMemoryRepository_AppendTrackingEntry_NotFound(t *testing.T) {
	repo := NewMemoryOrderRepository()

	_, err := repo.AppendTrackingEntry(context.Background(), domain.TrackingEntry{
		OrderID:   uuid.New(),
		Message:   "orphan note",
		CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, ports.ErrOrderNotFound)
}
