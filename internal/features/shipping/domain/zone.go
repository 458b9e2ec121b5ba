package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotServiceable is returned when a destination matches no configured zone.
	ErrNotServiceable = errors.New("destination not serviceable")
	// ErrValidation is returned for malformed addresses or invalid amounts.
	ErrValidation = errors.New("validation failed")
)

// Zone is a named shipping region. Zones are static reference data,
// loaded at startup and never mutated at runtime.
type Zone struct {
	// ID is the stable identifier of the zone.
	ID string `json:"id"`
	// Name is the display name shown at checkout.
	Name string `json:"name"`
	// Description explains the zone's coverage.
	Description string `json:"description,omitempty"`
	// Countries lists the countries this zone serves (case-insensitive match).
	Countries []string `json:"countries"`
	// States optionally narrows the zone to specific states within its countries.
	States []string `json:"states,omitempty"`
	// StateKeywords marks a preferential-region zone: the zone matches when
	// the address state contains any keyword, case-insensitively. Evaluated
	// before generic country/state matching.
	StateKeywords []string `json:"state_keywords,omitempty"`
	// BaseRate is the flat shipping cost below the free-shipping threshold.
	BaseRate decimal.Decimal `json:"base_rate"`
	// FreeShippingThreshold is the order subtotal at or above which shipping is waived.
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
	// DeliveryDaysMin is the lower bound of the delivery estimate, in calendar days.
	DeliveryDaysMin int `json:"delivery_days_min"`
	// DeliveryDaysMax is the upper bound of the delivery estimate, in calendar days.
	DeliveryDaysMax int `json:"delivery_days_max"`
	// Courier is the shipping partner label shown to the customer.
	Courier string `json:"courier,omitempty"`
}

// MatchesCountry reports whether the zone serves the given country.
func (z Zone) MatchesCountry(country string) bool {
	for _, c := range z.Countries {
		if strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}

// MatchesState reports whether the zone covers the given state by exact
// (case-insensitive) name. A zone with no state list covers all states.
func (z Zone) MatchesState(state string) bool {
	if len(z.States) == 0 {
		return true
	}
	for _, s := range z.States {
		if strings.EqualFold(s, state) {
			return true
		}
	}
	return false
}

// MatchesStateKeyword reports whether the address state contains one of the
// zone's preferential-region keywords. The substring match is intentionally
// loose; it mirrors the seller's local-region discount policy.
func (z Zone) MatchesStateKeyword(state string) bool {
	if len(z.StateKeywords) == 0 || state == "" {
		return false
	}
	lower := strings.ToLower(state)
	for _, kw := range z.StateKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
