package service

import (
	"fmt"
	"time"

	"storefront-engine/internal/features/shipping/domain"
	"storefront-engine/internal/features/shipping/ports"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ShippingServiceImpl implements ports.ShippingService. It is a pure
// function of (address, subtotal, zone table, current time) and is safe
// for concurrent use.
type ShippingServiceImpl struct {
	zones    ports.ZoneRepository
	validate *validator.Validate
	now      func() time.Time
}

// NewShippingService creates a new ShippingServiceImpl.
func NewShippingService(zones ports.ZoneRepository) *ShippingServiceImpl {
	return &ShippingServiceImpl{
		zones:    zones,
		validate: validator.New(),
		now:      time.Now,
	}
}

// WithClock overrides the time source. Used by tests for deterministic
// delivery estimates.
func (s *ShippingServiceImpl) WithClock(now func() time.Time) *ShippingServiceImpl {
	s.now = now
	return s
}

// DetectZone resolves the shipping zone for a destination address.
// Preferential-region zones (state keyword match) are evaluated first as an
// explicit rule; generic country/state matching runs afterwards, first
// configured match wins.
func (s *ShippingServiceImpl) DetectZone(address domain.Address) (*domain.Zone, error) {
	if err := s.validate.Struct(address); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, validationDetail(err))
	}

	zones := s.zones.All()

	for _, zone := range zones {
		if len(zone.StateKeywords) == 0 {
			continue
		}
		if zone.MatchesCountry(address.Country) && zone.MatchesStateKeyword(address.State) {
			z := zone
			return &z, nil
		}
	}

	for _, zone := range zones {
		if len(zone.StateKeywords) > 0 {
			continue
		}
		if zone.MatchesCountry(address.Country) && zone.MatchesState(address.State) {
			z := zone
			return &z, nil
		}
	}

	return nil, domain.ErrNotServiceable
}

// Calculate computes the shipping cost and delivery estimate for an address
// and order subtotal. Repeated calls with the same inputs and clock are
// deterministic; callers debounce, not this component.
func (s *ShippingServiceImpl) Calculate(address domain.Address, subtotal decimal.Decimal) (*domain.Calculation, error) {
	if subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: order subtotal must not be negative", domain.ErrValidation)
	}

	zone, err := s.DetectZone(address)
	if err != nil {
		return nil, err
	}

	freeShipping := subtotal.GreaterThanOrEqual(zone.FreeShippingThreshold)

	cost := zone.BaseRate
	remaining := decimal.Zero
	if freeShipping {
		cost = decimal.Zero
	} else {
		remaining = zone.FreeShippingThreshold.Sub(subtotal)
	}

	now := s.now()

	return &domain.Calculation{
		Zone:                 *zone,
		BaseRate:             zone.BaseRate,
		ShippingCost:         cost,
		FreeShipping:         freeShipping,
		AmountToFreeShipping: remaining,
		EstimatedDeliveryMin: now.AddDate(0, 0, zone.DeliveryDaysMin),
		EstimatedDeliveryMax: now.AddDate(0, 0, zone.DeliveryDaysMax),
		Courier:              zone.Courier,
	}, nil
}

// Zones lists all configured zones in match order.
func (s *ShippingServiceImpl) Zones() []domain.Zone {
	return s.zones.All()
}

// validationDetail extracts the first offending field from a validator error.
func validationDetail(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("field %s failed on %s", errs[0].Field(), errs[0].Tag())
	}
	return err.Error()
}
