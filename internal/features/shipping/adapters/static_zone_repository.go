package adapters

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront-engine/internal/core/config"
	"storefront-engine/internal/features/shipping/domain"

	"github.com/shopspring/decimal"
)

// StaticZoneRepository implements ports.ZoneRepository with a fixed zone
// table assembled at startup: the built-in domestic zones for the store
// country, optionally followed by zones loaded from a JSON file.
type StaticZoneRepository struct {
	zones []domain.Zone
}

// NewStaticZoneRepository builds the zone table from configuration.
func NewStaticZoneRepository(cfg config.ShippingConfig) (*StaticZoneRepository, error) {
	zones := defaultZones(cfg.StoreCountry)

	if cfg.ZonesFile != "" {
		fileZones, err := loadZonesFile(cfg.ZonesFile)
		if err != nil {
			return nil, err
		}
		zones = append(zones, fileZones...)
	}

	return &StaticZoneRepository{zones: zones}, nil
}

// All returns the configured zones in match order.
func (r *StaticZoneRepository) All() []domain.Zone {
	out := make([]domain.Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

// defaultZones returns the built-in zone table for the store's home country:
// the preferential home-region zone first, then the country-wide standard zone.
func defaultZones(storeCountry string) []domain.Zone {
	return []domain.Zone{
		{
			ID:                    "home-region-preferential",
			Name:                  "Jammu & Kashmir / Ladakh",
			Description:           "Preferential local-region rate",
			Countries:             []string{storeCountry},
			StateKeywords:         []string{"kashmir", "j&k", "ladakh"},
			BaseRate:              decimal.NewFromInt(50),
			FreeShippingThreshold: decimal.NewFromInt(2000),
			DeliveryDaysMin:       3,
			DeliveryDaysMax:       5,
			Courier:               "India Post",
		},
		{
			ID:                    "domestic-standard",
			Name:                  "Rest of " + storeCountry,
			Description:           "Standard domestic rate",
			Countries:             []string{storeCountry},
			BaseRate:              decimal.NewFromInt(100),
			FreeShippingThreshold: decimal.NewFromInt(2000),
			DeliveryDaysMin:       5,
			DeliveryDaysMax:       9,
			Courier:               "Delhivery",
		},
	}
}

// loadZonesFile reads additional zones from a JSON array file.
func loadZonesFile(path string) ([]domain.Zone, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file %s: %w", path, err)
	}

	var zones []domain.Zone
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, fmt.Errorf("failed to parse zones file %s: %w", path, err)
	}

	for _, z := range zones {
		if z.ID == "" || len(z.Countries) == 0 {
			return nil, fmt.Errorf("invalid zone in %s: id and countries are required", path)
		}
		if z.DeliveryDaysMin > z.DeliveryDaysMax {
			return nil, fmt.Errorf("invalid zone %s: delivery day range is inverted", z.ID)
		}
	}

	return zones, nil
}
