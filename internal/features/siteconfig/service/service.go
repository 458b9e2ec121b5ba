package service

import (
	"context"
	"fmt"
	"time"

	"storefront-engine/internal/features/siteconfig/domain"
	"storefront-engine/internal/features/siteconfig/ports"

	"github.com/go-playground/validator/v10"
)

// SiteConfigServiceImpl implements ports.SiteConfigService.
type SiteConfigServiceImpl struct {
	repo     ports.SiteConfigRepository
	validate *validator.Validate
}

// NewSiteConfigService creates a new SiteConfigServiceImpl.
func NewSiteConfigService(repo ports.SiteConfigRepository) *SiteConfigServiceImpl {
	return &SiteConfigServiceImpl{
		repo:     repo,
		validate: validator.New(),
	}
}

// Update validates and stores the full configuration, replacing the previous
// one.
func (s *SiteConfigServiceImpl) Update(ctx context.Context, cfg domain.SiteConfig) (*domain.SiteConfig, error) {
	if err := s.validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidConfig, validationDetail(err))
	}

	cfg.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("service: failed to save site config: %w", err)
	}

	return &cfg, nil
}

// Get returns the stored configuration, or the defaults when none has been
// saved yet.
func (s *SiteConfigServiceImpl) Get(ctx context.Context) (*domain.SiteConfig, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get site config: %w", err)
	}
	if cfg == nil {
		return domain.Default(), nil
	}

	return cfg, nil
}

// validationDetail extracts the first offending field from a validator error.
func validationDetail(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Sprintf("field %s failed on %s", errs[0].Field(), errs[0].Tag())
	}
	return err.Error()
}
