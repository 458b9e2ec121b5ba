package adapters

import (
	"context"
	"sort"
	"sync"

	"storefront-engine/internal/features/orders/domain"
	"storefront-engine/internal/features/orders/ports"

	"github.com/google/uuid"
)

// MemoryOrderRepository implements ports.OrderRepository in process memory.
// A single mutex serializes all writes, which gives the same observable
// guarantees as the Postgres adapter's transactions: a status update and its
// tracking entry are never visible separately, and concurrent transitions
// are validated against the current stored status.
type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*domain.Order
	seq    int64
}

// NewMemoryOrderRepository creates an empty in-memory repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[uuid.UUID]*domain.Order),
	}
}

// Create persists an order with its items and initial tracking entries.
func (r *MemoryOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneOrder(order)
	for i := range stored.Tracking {
		r.seq++
		stored.Tracking[i].Seq = r.seq
	}
	r.orders[stored.ID] = stored

	// Reflect assigned sequence numbers back to the caller's copy.
	order.Tracking = cloneEntries(stored.Tracking)
	return nil
}

// GetByID returns a copy of the stored order with tracking history sorted by
// (created_at, seq) ascending.
func (r *MemoryOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	return cloneOrder(stored), nil
}

// ApplyStatusChange updates the status and appends the tracking entry under
// one lock acquisition. The stored status must still equal change.From.
func (r *MemoryOrderRepository) ApplyStatusChange(ctx context.Context, orderID uuid.UUID, change ports.StatusChange) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[orderID]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	if stored.Status != change.From {
		return nil, ports.ErrConflict
	}

	stored.Status = change.To
	if change.ShippedAt != nil && stored.ShippedAt == nil {
		stored.ShippedAt = change.ShippedAt
	}
	if change.DeliveredAt != nil && stored.DeliveredAt == nil {
		stored.DeliveredAt = change.DeliveredAt
	}
	if change.TrackingNumber != "" {
		stored.TrackingNumber = change.TrackingNumber
	}
	stored.UpdatedAt = change.Entry.CreatedAt

	entry := change.Entry
	r.seq++
	entry.Seq = r.seq
	stored.Tracking = append(stored.Tracking, entry)
	sortEntries(stored.Tracking)

	return cloneOrder(stored), nil
}

// ApplyPaymentStatusChange updates the payment status with compare-and-set
// semantics. No tracking entry is written.
func (r *MemoryOrderRepository) ApplyPaymentStatusChange(ctx context.Context, orderID uuid.UUID, from, to domain.PaymentStatus) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[orderID]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}
	if stored.PaymentStatus != from {
		return nil, ports.ErrConflict
	}

	stored.PaymentStatus = to
	return cloneOrder(stored), nil
}

// AppendTrackingEntry appends a manual note to the order's timeline.
func (r *MemoryOrderRepository) AppendTrackingEntry(ctx context.Context, entry domain.TrackingEntry) (*domain.TrackingEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[entry.OrderID]
	if !ok {
		return nil, ports.ErrOrderNotFound
	}

	r.seq++
	entry.Seq = r.seq
	stored.Tracking = append(stored.Tracking, entry)
	sortEntries(stored.Tracking)

	out := entry
	return &out, nil
}

// sortEntries keeps the timeline ordered by (created_at, seq).
func sortEntries(entries []domain.TrackingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].Seq < entries[j].Seq
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

func cloneOrder(o *domain.Order) *domain.Order {
	out := *o
	out.Items = append([]domain.OrderItem(nil), o.Items...)
	out.Tracking = cloneEntries(o.Tracking)
	return &out
}

func cloneEntries(entries []domain.TrackingEntry) []domain.TrackingEntry {
	return append([]domain.TrackingEntry(nil), entries...)
}
