package ports

import (
	"storefront-engine/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// ShippingService defines the primary port for shipping calculations.
type ShippingService interface {
	// DetectZone resolves the shipping zone for a destination address.
	DetectZone(address domain.Address) (*domain.Zone, error)
	// Calculate computes shipping cost, free-shipping eligibility and the
	// delivery estimate for an address and order subtotal.
	Calculate(address domain.Address, subtotal decimal.Decimal) (*domain.Calculation, error)
	// Zones lists all configured zones.
	Zones() []domain.Zone
}

// ZoneRepository defines the secondary port for zone reference data.
// Zones are read-only; ordering is significant (first match wins).
type ZoneRepository interface {
	All() []domain.Zone
}
