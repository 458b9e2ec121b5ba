package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is the result of a shipping cost calculation. It is derived,
// never persisted; a fresh value is produced on every call.
type Calculation struct {
	// Zone is the resolved shipping zone.
	Zone Zone `json:"zone"`
	// BaseRate is the zone's flat rate before free-shipping is applied.
	BaseRate decimal.Decimal `json:"base_rate"`
	// ShippingCost is the cost charged for this order (zero when free shipping applies).
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	// FreeShipping indicates the subtotal met the zone's threshold.
	FreeShipping bool `json:"free_shipping"`
	// AmountToFreeShipping is how much more the customer must add to reach
	// free shipping. Zero when already eligible.
	AmountToFreeShipping decimal.Decimal `json:"amount_to_free_shipping"`
	// EstimatedDeliveryMin is the earliest estimated delivery date.
	EstimatedDeliveryMin time.Time `json:"estimated_delivery_min"`
	// EstimatedDeliveryMax is the latest estimated delivery date.
	EstimatedDeliveryMax time.Time `json:"estimated_delivery_max"`
	// Courier is the shipping partner label for the zone.
	Courier string `json:"courier,omitempty"`
}
