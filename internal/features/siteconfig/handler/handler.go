package handler

import (
	"errors"
	"net/http"

	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/features/siteconfig/domain"
	"storefront-engine/internal/features/siteconfig/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SiteConfigHandler handles HTTP requests for storefront settings.
type SiteConfigHandler struct {
	service ports.SiteConfigService
}

// NewSiteConfigHandler creates a new SiteConfigHandler.
func NewSiteConfigHandler(service ports.SiteConfigService) *SiteConfigHandler {
	return &SiteConfigHandler{
		service: service,
	}
}

// Get handles GET /site-config.
// @Summary Get site configuration
// @Description Returns the current storefront settings, or the defaults when none have been saved.
// @Tags SiteConfig
// @Produce json
// @Success 200 {object} domain.SiteConfig
// @Failure 500 {object} map[string]string
// @Router /site-config [get]
func (h *SiteConfigHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get site config", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cfg)
}

// Update handles PUT /site-config.
// @Summary Update site configuration
// @Description Replaces the storefront settings; the storefront picks them up on the next request.
// @Tags SiteConfig
// @Accept json
// @Produce json
// @Param config body domain.SiteConfig true "New configuration"
// @Success 200 {object} domain.SiteConfig
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /site-config [put]
func (h *SiteConfigHandler) Update(c *fiber.Ctx) error {
	var req domain.SiteConfig
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cfg, err := h.service.Update(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidConfig) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		logger.Get().Error("Failed to update site config", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(cfg)
}
