package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront-engine/internal/features/orders/domain"
	"storefront-engine/internal/features/orders/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresOrderRepository implements ports.OrderRepository on Postgres.
// Status update and tracking-entry insert run in one transaction; the
// compare-and-set on the status column serializes concurrent transitions.
type PostgresOrderRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresOrderRepository creates a new PostgresOrderRepository.
func NewPostgresOrderRepository(pool *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{pool: pool}
}

// Create persists the order, its items and its initial tracking entries in
// one transaction.
func (r *PostgresOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	shippingJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}
	billingJSON, err := json.Marshal(order.BillingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal billing address: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, guest_name, guest_email, guest_phone,
			subtotal, tax, shipping, discount, total,
			status, payment_status, shipping_address, billing_address,
			tracking_number, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		order.ID, order.OrderNumber, order.UserID, order.GuestName, order.GuestEmail, order.GuestPhone,
		order.Subtotal, order.Tax, order.Shipping, order.Discount, order.Total,
		order.Status, order.PaymentStatus, shippingJSON, billingJSON,
		order.TrackingNumber, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range order.Items {
		snapshotJSON, mErr := json.Marshal(item.ProductSnapshot)
		if mErr != nil {
			return fmt.Errorf("failed to marshal product snapshot: %w", mErr)
		}
		batch.Queue(`
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, line_total, product_snapshot)
			VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal, snapshotJSON,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
	}

	for i := range order.Tracking {
		seq, tErr := insertTrackingEntry(ctx, tx, &order.Tracking[i])
		if tErr != nil {
			return tErr
		}
		order.Tracking[i].Seq = seq
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// GetByID returns the order with items and tracking history ordered by
// (created_at, seq) ascending.
func (r *PostgresOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var (
		o            domain.Order
		shippingJSON []byte
		billingJSON  []byte
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, order_number, user_id, guest_name, guest_email, guest_phone,
		       subtotal, tax, shipping, discount, total,
		       status, payment_status, shipping_address, billing_address,
		       tracking_number, shipped_at, delivered_at, created_at, updated_at
		FROM orders WHERE id = $1`, id).
		Scan(&o.ID, &o.OrderNumber, &o.UserID, &o.GuestName, &o.GuestEmail, &o.GuestPhone,
			&o.Subtotal, &o.Tax, &o.Shipping, &o.Discount, &o.Total,
			&o.Status, &o.PaymentStatus, &shippingJSON, &billingJSON,
			&o.TrackingNumber, &o.ShippedAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	if err := json.Unmarshal(shippingJSON, &o.ShippingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
	}
	if err := json.Unmarshal(billingJSON, &o.BillingAddress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal billing address: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items

	tracking, err := r.loadTracking(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Tracking = tracking

	return &o, nil
}

// ApplyStatusChange updates the order row and appends the tracking entry in
// one transaction. The UPDATE's status predicate is the optimistic lock: a
// concurrent writer that already moved the status makes it match zero rows.
func (r *PostgresOrderRepository) ApplyStatusChange(ctx context.Context, orderID uuid.UUID, change ports.StatusChange) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx, `
		UPDATE orders
		SET status = $3,
		    shipped_at = COALESCE(shipped_at, $4),
		    delivered_at = COALESCE(delivered_at, $5),
		    tracking_number = CASE WHEN $6 <> '' THEN $6 ELSE tracking_number END,
		    updated_at = $7
		WHERE id = $1 AND status = $2`,
		orderID, change.From, change.To, change.ShippedAt, change.DeliveredAt,
		change.TrackingNumber, change.Entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check order existence: %w", err)
		}
		if !exists {
			return nil, ports.ErrOrderNotFound
		}
		return nil, ports.ErrConflict
	}

	if _, err := insertTrackingEntry(ctx, tx, &change.Entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	return r.GetByID(ctx, orderID)
}

// ApplyPaymentStatusChange updates the payment status with the same
// compare-and-set semantics. No tracking entry is written.
func (r *PostgresOrderRepository) ApplyPaymentStatusChange(ctx context.Context, orderID uuid.UUID, from, to domain.PaymentStatus) (*domain.Order, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders SET payment_status = $3, updated_at = now()
		WHERE id = $1 AND payment_status = $2`,
		orderID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, orderID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("failed to check order existence: %w", err)
		}
		if !exists {
			return nil, ports.ErrOrderNotFound
		}
		return nil, ports.ErrConflict
	}

	return r.GetByID(ctx, orderID)
}

// AppendTrackingEntry appends a manual note to the order's timeline.
func (r *PostgresOrderRepository) AppendTrackingEntry(ctx context.Context, entry domain.TrackingEntry) (*domain.TrackingEntry, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, entry.OrderID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to check order existence: %w", err)
	}
	if !exists {
		return nil, ports.ErrOrderNotFound
	}

	seq, err := insertTrackingEntry(ctx, r.pool, &entry)
	if err != nil {
		return nil, err
	}
	entry.Seq = seq
	return &entry, nil
}

// queryRower is satisfied by both pgx transactions and the pool.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// insertTrackingEntry inserts one tracking entry and returns its assigned
// sequence id (bigserial, the created_at tie-breaker).
func insertTrackingEntry(ctx context.Context, q queryRower, entry *domain.TrackingEntry) (int64, error) {
	metadataJSON, err := json.Marshal(entry.Metadata)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal tracking metadata: %w", err)
	}

	var seq int64
	err = q.QueryRow(ctx, `
		INSERT INTO order_tracking (order_id, status, message, location, metadata, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`,
		entry.OrderID, entry.Status, entry.Message, entry.Location, metadataJSON, entry.CreatedBy, entry.CreatedAt,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to insert tracking entry: %w", err)
	}
	return seq, nil
}

// loadItems fetches the order's line items.
func (r *PostgresOrderRepository) loadItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, line_total, product_snapshot
		FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			item         domain.OrderItem
			snapshotJSON []byte
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&item.UnitPrice, &item.LineTotal, &snapshotJSON); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		if err := json.Unmarshal(snapshotJSON, &item.ProductSnapshot); err != nil {
			return nil, fmt.Errorf("failed to unmarshal product snapshot: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// loadTracking fetches the order's timeline ordered by (created_at, seq).
func (r *PostgresOrderRepository) loadTracking(ctx context.Context, orderID uuid.UUID) ([]domain.TrackingEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, status, message, location, metadata, created_by, created_at
		FROM order_tracking WHERE order_id = $1
		ORDER BY created_at ASC, id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracking history: %w", err)
	}
	defer rows.Close()

	var entries []domain.TrackingEntry
	for rows.Next() {
		var (
			entry        domain.TrackingEntry
			metadataJSON []byte
		)
		if err := rows.Scan(&entry.Seq, &entry.OrderID, &entry.Status, &entry.Message,
			&entry.Location, &metadataJSON, &entry.CreatedBy, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tracking entry: %w", err)
		}
		if err := json.Unmarshal(metadataJSON, &entry.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tracking metadata: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
