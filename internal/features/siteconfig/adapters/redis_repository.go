package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront-engine/internal/core/cache"
	"storefront-engine/internal/features/siteconfig/domain"
)

const siteConfigCacheKey = "site_config"

// RedisSiteConfigRepository implements ports.SiteConfigRepository on top of
// the cache port. The configuration is a single JSON document under one key
// with no expiration.
type RedisSiteConfigRepository struct {
	cache cache.Cache
}

// NewRedisSiteConfigRepository creates a new RedisSiteConfigRepository.
func NewRedisSiteConfigRepository(c cache.Cache) *RedisSiteConfigRepository {
	return &RedisSiteConfigRepository{
		cache: c,
	}
}

// Save stores the configuration.
func (r *RedisSiteConfigRepository) Save(ctx context.Context, cfg *domain.SiteConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal site config: %w", err)
	}

	if err := r.cache.Set(ctx, siteConfigCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save site config to cache: %w", err)
	}

	return nil
}

// Get retrieves the configuration. Returns nil, nil when nothing is stored.
func (r *RedisSiteConfigRepository) Get(ctx context.Context) (*domain.SiteConfig, error) {
	data, err := r.cache.Get(ctx, siteConfigCacheKey)
	if err != nil {
		if err.Error() == fmt.Sprintf("key not found: %s", siteConfigCacheKey) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site config from cache: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var cfg domain.SiteConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site config: %w", err)
	}

	return &cfg, nil
}
