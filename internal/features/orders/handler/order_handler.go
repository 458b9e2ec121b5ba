package handler

import (
	"errors"
	"net/http"

	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/features/orders/domain"
	"storefront-engine/internal/features/orders/ports"
	orderservice "storefront-engine/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for the order lifecycle.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// ChangeStatusRequest represents the body of a status change.
type ChangeStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
	// TrackingNumber optionally records the carrier reference with the change.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// ActorID identifies the operator applying the change.
	ActorID *uuid.UUID `json:"actor_id,omitempty"`
}

// ChangePaymentStatusRequest represents the body of a payment status change.
type ChangePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

// StatusChangeResponse wraps an updated order with the no-op indicator.
type StatusChangeResponse struct {
	Order *domain.Order `json:"order"`
	// Changed is false when the requested status equals the current one;
	// nothing was recorded in that case.
	Changed bool `json:"changed"`
}

// PlaceOrder handles POST /orders.
// @Summary Place an order
// @Description Creates an order from a completed checkout, snapshotting line items and writing the first tracking entry.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body ports.PlaceOrderInput true "Checkout payload"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	rayID := rayID(c)

	var input ports.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), input)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// GetOrder handles GET /orders/:id.
// @Summary Get order by ID
// @Description Returns the order with embedded items and tracking history ordered oldest first.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid order ID",
			RayID:   rayID,
		})
	}

	order, err := h.service.GetOrder(c.Context(), id)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// ChangeStatus handles PATCH /orders/:id/status.
// @Summary Change order status
// @Description Applies a fulfillment status transition; on success exactly one tracking entry is appended atomically.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param change body ChangeStatusRequest true "New status"
// @Success 200 {object} StatusChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid order ID",
			RayID:   rayID,
		})
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	order, changed, err := h.service.ChangeStatus(c.Context(), id, req.Status, req.TrackingNumber, req.ActorID)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(StatusChangeResponse{
		Order:   order,
		Changed: changed,
	})
}

// ChangePaymentStatus handles PATCH /orders/:id/payment-status.
// @Summary Change order payment status
// @Description Applies a payment status transition, tracked independently of fulfillment status.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param change body ChangePaymentStatusRequest true "New payment status"
// @Success 200 {object} StatusChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /orders/{id}/payment-status [patch]
func (h *OrderHandler) ChangePaymentStatus(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid order ID",
			RayID:   rayID,
		})
	}

	var req ChangePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	order, changed, err := h.service.ChangePaymentStatus(c.Context(), id, req.PaymentStatus)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusOK).JSON(StatusChangeResponse{
		Order:   order,
		Changed: changed,
	})
}

// AddNote handles POST /orders/:id/tracking.
// @Summary Add a manual tracking note
// @Description Appends a free-form tracking entry (e.g. carrier handoff) without changing the order status.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param note body ports.NoteInput true "Note details"
// @Success 201 {object} domain.TrackingEntry
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/tracking [post]
func (h *OrderHandler) AddNote(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid order ID",
			RayID:   rayID,
		})
	}

	var input ports.NoteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	entry, err := h.service.AddNote(c.Context(), id, input)
	if err != nil {
		return h.mapError(c, err, rayID)
	}

	return c.Status(http.StatusCreated).JSON(entry)
}

// mapError converts order lifecycle errors to HTTP responses.
func (h *OrderHandler) mapError(c *fiber.Ctx, err error, rayID string) error {
	switch {
	case errors.Is(err, ports.ErrOrderNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
			RayID:   rayID,
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	case errors.Is(err, ports.ErrConflict):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Message: "Order was modified concurrently, refetch and retry",
			RayID:   rayID,
		})
	case errors.Is(err, domain.ErrUnknownStatus),
		errors.Is(err, domain.ErrInvalidAmounts),
		errors.Is(err, orderservice.ErrEmptyOrder),
		errors.Is(err, orderservice.ErrEmptyNote):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	default:
		logger.Get().Error("Order operation failed",
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
