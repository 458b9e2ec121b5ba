package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidConfig = errors.New("invalid site configuration")
)

// SiteConfig holds storefront-wide presentation settings. The storefront
// resolves it per request, so an update is visible immediately without a
// redeploy.
type SiteConfig struct {
	StoreName        string    `json:"store_name" validate:"required,max=120"`
	SupportEmail     string    `json:"support_email" validate:"omitempty,email"`
	CartButtonColor  string    `json:"cart_button_color" validate:"omitempty,hexcolor"`
	AnnouncementText string    `json:"announcement_text" validate:"max=500"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Default returns the configuration served when nothing has been stored yet.
func Default() *SiteConfig {
	return &SiteConfig{
		StoreName:       "Storefront",
		CartButtonColor: "#1a1a1a",
	}
}
