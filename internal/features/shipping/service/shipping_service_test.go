package service

import (
	"testing"
	"time"

	"storefront-engine/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockZoneRepository is a mock implementation of ZoneRepository for testing.
type mockZoneRepository struct {
	zones []domain.Zone
}

// All implements ZoneRepository.
func (m *mockZoneRepository) All() []domain.Zone {
	return m.zones
}

func testZones() []domain.Zone {
	return []domain.Zone{
		{
			ID:                    "home-region-preferential",
			Name:                  "Jammu & Kashmir / Ladakh",
			Countries:             []string{"India"},
			StateKeywords:         []string{"kashmir", "j&k", "ladakh"},
			BaseRate:              decimal.NewFromInt(50),
			FreeShippingThreshold: decimal.NewFromInt(2000),
			DeliveryDaysMin:       3,
			DeliveryDaysMax:       5,
			Courier:               "India Post",
		},
		{
			ID:                    "domestic-standard",
			Name:                  "Rest of India",
			Countries:             []string{"India"},
			BaseRate:              decimal.NewFromInt(100),
			FreeShippingThreshold: decimal.NewFromInt(2000),
			DeliveryDaysMin:       5,
			DeliveryDaysMax:       9,
			Courier:               "Delhivery",
		},
	}
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

// TestDetectZone_PreferentialRegion verifies that the home-region keyword rule
// wins over generic country matching.
func TestDetectZone_PreferentialRegion(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	address := domain.Address{
		City:       "Srinagar",
		State:      "Jammu and Kashmir",
		Country:    "India",
		PostalCode: "190001",
	}

	zone, err := svc.DetectZone(address)
	require.NoError(t, err)
	assert.Equal(t, "home-region-preferential", zone.ID)
	assert.True(t, zone.BaseRate.Equal(decimal.NewFromInt(50)))
}

// TestDetectZone_PreferentialRegion_CaseInsensitive verifies any-case keyword matching.
func TestDetectZone_PreferentialRegion_CaseInsensitive(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	for _, state := range []string{"JAMMU AND KASHMIR", "j&k", "Ladakh UT"} {
		zone, err := svc.DetectZone(domain.Address{State: state, Country: "India"})
		require.NoError(t, err, state)
		assert.Equal(t, "home-region-preferential", zone.ID, state)
	}
}

// TestDetectZone_DomesticStandard verifies the general-country fallback.
func TestDetectZone_DomesticStandard(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	zone, err := svc.DetectZone(domain.Address{State: "Maharashtra", Country: "India"})
	require.NoError(t, err)
	assert.Equal(t, "domestic-standard", zone.ID)
	assert.True(t, zone.BaseRate.Equal(decimal.NewFromInt(100)))
}

// TestDetectZone_NotServiceable verifies unknown destinations are rejected.
func TestDetectZone_NotServiceable(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	zone, err := svc.DetectZone(domain.Address{Country: "Unlisted Country"})
	assert.Nil(t, zone)
	assert.ErrorIs(t, err, domain.ErrNotServiceable)
}

// TestDetectZone_MissingCountry verifies validation runs before zone lookup.
func TestDetectZone_MissingCountry(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	zone, err := svc.DetectZone(domain.Address{City: "Mumbai"})
	assert.Nil(t, zone)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestCalculate_BelowThreshold verifies the paid-shipping path and the
// amount-to-free-shipping prompt value.
func TestCalculate_BelowThreshold(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()}).WithClock(fixedClock())

	address := domain.Address{
		City:       "Srinagar",
		State:      "Jammu and Kashmir",
		Country:    "India",
		PostalCode: "190001",
	}

	calc, err := svc.Calculate(address, decimal.NewFromInt(1500))
	require.NoError(t, err)

	assert.Equal(t, "home-region-preferential", calc.Zone.ID)
	assert.True(t, calc.ShippingCost.Equal(decimal.NewFromInt(50)))
	assert.False(t, calc.FreeShipping)
	assert.True(t, calc.AmountToFreeShipping.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "India Post", calc.Courier)
}

// TestCalculate_AboveThreshold verifies free shipping at and above the threshold.
func TestCalculate_AboveThreshold(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()}).WithClock(fixedClock())

	address := domain.Address{
		City:    "Srinagar",
		State:   "Jammu and Kashmir",
		Country: "India",
	}

	calc, err := svc.Calculate(address, decimal.NewFromInt(2500))
	require.NoError(t, err)
	assert.True(t, calc.ShippingCost.IsZero())
	assert.True(t, calc.FreeShipping)
	assert.True(t, calc.AmountToFreeShipping.IsZero())

	exact, err := svc.Calculate(address, decimal.NewFromInt(2000))
	require.NoError(t, err)
	assert.True(t, exact.FreeShipping)
	assert.True(t, exact.ShippingCost.IsZero())
}

// TestCalculate_DeliveryEstimate verifies calendar-day date additions.
func TestCalculate_DeliveryEstimate(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()}).WithClock(fixedClock())

	calc, err := svc.Calculate(domain.Address{State: "Maharashtra", Country: "India"}, decimal.NewFromInt(500))
	require.NoError(t, err)

	now := fixedClock()()
	assert.Equal(t, now.AddDate(0, 0, 5), calc.EstimatedDeliveryMin)
	assert.Equal(t, now.AddDate(0, 0, 9), calc.EstimatedDeliveryMax)
}

// TestCalculate_NegativeSubtotal verifies amount validation.
func TestCalculate_NegativeSubtotal(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()})

	calc, err := svc.Calculate(domain.Address{Country: "India"}, decimal.NewFromInt(-1))
	assert.Nil(t, calc)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// TestCalculate_Deterministic verifies repeated calls yield identical results.
func TestCalculate_Deterministic(t *testing.T) {
	svc := NewShippingService(&mockZoneRepository{zones: testZones()}).WithClock(fixedClock())
	address := domain.Address{State: "Maharashtra", Country: "India"}

	first, err := svc.Calculate(address, decimal.NewFromInt(750))
	require.NoError(t, err)
	second, err := svc.Calculate(address, decimal.NewFromInt(750))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
