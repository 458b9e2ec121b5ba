package handler

import (
	"errors"
	"net/http"

	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/features/shipping/domain"
	"storefront-engine/internal/features/shipping/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ShippingHandler handles HTTP requests for shipping calculations.
type ShippingHandler struct {
	service ports.ShippingService
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(service ports.ShippingService) *ShippingHandler {
	return &ShippingHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CalculateRequest represents the request body for a shipping calculation.
type CalculateRequest struct {
	Address    domain.Address  `json:"address"`
	OrderTotal decimal.Decimal `json:"order_total"`
}

// DetectZoneRequest represents the request body for zone detection.
type DetectZoneRequest struct {
	Address domain.Address `json:"address"`
}

// Calculate handles POST /shipping/calculate.
// @Summary Calculate shipping cost
// @Description Computes shipping cost, free-shipping eligibility and delivery estimate for a destination and order subtotal.
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Destination and order subtotal"
// @Success 200 {object} domain.Calculation
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /shipping/calculate [post]
func (h *ShippingHandler) Calculate(c *fiber.Ctx) error {
	rayID := rayID(c)

	var req CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	calc, err := h.service.Calculate(req.Address, req.OrderTotal)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(calc)
}

// DetectZone handles POST /shipping/detect-zone.
// @Summary Detect shipping zone
// @Description Resolves the shipping zone serving a destination address.
// @Tags shipping
// @Accept json
// @Produce json
// @Param request body DetectZoneRequest true "Destination address"
// @Success 200 {object} domain.Zone
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /shipping/detect-zone [post]
func (h *ShippingHandler) DetectZone(c *fiber.Ctx) error {
	rayID := rayID(c)

	var req DetectZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	zone, err := h.service.DetectZone(req.Address)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(zone)
}

// ListZones handles GET /shipping/zones.
// @Summary List shipping zones
// @Description Lists all configured shipping zones in match order.
// @Tags shipping
// @Produce json
// @Success 200 {array} domain.Zone
// @Router /shipping/zones [get]
func (h *ShippingHandler) ListZones(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Zones())
}

// mapError converts shipping domain errors to HTTP responses.
func (h *ShippingHandler) mapError(c *fiber.Ctx, err error, rayID string) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	case errors.Is(err, domain.ErrNotServiceable):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Message: "We do not ship to this destination yet",
			RayID:   rayID,
		})
	default:
		logger.Get().Error("Shipping calculation failed",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}
}

// rayID extracts the request id set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
