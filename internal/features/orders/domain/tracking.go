package domain

import (
	"time"

	"github.com/google/uuid"
)

// TrackingMetadata holds the known optional keys of a tracking entry's
// metadata blob. Unknown keys are not accepted; the schema stays checkable.
type TrackingMetadata struct {
	// Carrier is the courier handling the shipment at this point.
	Carrier string `json:"carrier,omitempty"`
	// TrackingURL is a customer-facing link to the carrier's tracking page.
	TrackingURL string `json:"tracking_url,omitempty"`
	// Department is the internal department that produced the entry.
	Department string `json:"department,omitempty"`
	// Hours is the department's contact hours.
	Hours string `json:"hours,omitempty"`
}

// IsZero reports whether no metadata key is set.
func (m TrackingMetadata) IsZero() bool {
	return m == TrackingMetadata{}
}

// TrackingEntry is one append-only audit record describing an order's status
// at a point in time. Entries are never edited or deleted; the sequence
// ordered by (created_at, seq) is the order's customer-visible timeline.
type TrackingEntry struct {
	// Seq is a monotonic per-table sequence breaking created_at ties.
	Seq int64 `json:"seq"`
	// OrderID references the owning order.
	OrderID uuid.UUID `json:"order_id"`
	// Status is the order status this entry records. Manual notes carry the
	// order's status at the time the note was added.
	Status OrderStatus `json:"status"`
	// Message is the human-readable description of the event.
	Message string `json:"message"`
	// Location is where the event occurred, when known.
	Location string `json:"location,omitempty"`
	// Metadata carries optional structured details (carrier, tracking URL...).
	Metadata TrackingMetadata `json:"metadata,omitempty"`
	// CreatedBy is the operator who produced the entry; nil for system entries.
	CreatedBy *uuid.UUID `json:"created_by,omitempty"`
	// CreatedAt is when the entry was recorded.
	CreatedAt time.Time `json:"created_at"`
}
