package domain

// Address is a shipping destination. It is used only for zone lookup;
// the order keeps its own immutable address snapshot.
type Address struct {
	// City is the destination city.
	City string `json:"city" validate:"max=120"`
	// State is the destination state or province. Used for sub-country
	// zone refinement in domestic multi-zone countries.
	State string `json:"state" validate:"max=120"`
	// Country is the destination country. Required for any calculation.
	Country string `json:"country" validate:"required,max=120"`
	// PostalCode is the destination postal code.
	PostalCode string `json:"postal_code" validate:"max=20"`
}
