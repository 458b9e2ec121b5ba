package ports

import (
	"context"

	"storefront-engine/internal/features/siteconfig/domain"
)

// SiteConfigService defines the primary port for site configuration operations.
type SiteConfigService interface {
	Update(ctx context.Context, cfg domain.SiteConfig) (*domain.SiteConfig, error)
	Get(ctx context.Context) (*domain.SiteConfig, error)
}

// SiteConfigRepository defines the secondary port for site configuration storage.
type SiteConfigRepository interface {
	Save(ctx context.Context, cfg *domain.SiteConfig) error
	Get(ctx context.Context) (*domain.SiteConfig, error)
}
