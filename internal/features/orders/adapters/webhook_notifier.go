package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"storefront-engine/internal/core/config"
	"storefront-engine/internal/core/httpclient"
	"storefront-engine/internal/core/logger"
	"storefront-engine/internal/features/orders/domain"

	"go.uber.org/zap"
)

// WebhookNotifier implements ports.StatusNotifier by POSTing status changes
// to a configured endpoint (e.g. the serverless function that emails the
// customer). Delivery is best-effort: a failed notification is logged and
// never affects the committed transition.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

// NewWebhookNotifier creates a WebhookNotifier from configuration.
func NewWebhookNotifier(cfg config.WebhookConfig) *WebhookNotifier {
	return &WebhookNotifier{
		client: httpclient.NewClient(time.Duration(cfg.TimeoutSeconds) * time.Second),
		url:    cfg.StatusURL,
	}
}

// statusChangePayload is the webhook body.
type statusChangePayload struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	GuestEmail  string    `json:"guest_email,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// NotifyStatusChange posts the transition to the configured endpoint.
func (n *WebhookNotifier) NotifyStatusChange(ctx context.Context, order *domain.Order, previous domain.OrderStatus) {
	payload := statusChangePayload{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		OldStatus:   string(previous),
		NewStatus:   string(order.Status),
		GuestEmail:  order.GuestEmail,
		OccurredAt:  order.UpdatedAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Get().Error("Failed to marshal status webhook payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		logger.Get().Error("Failed to build status webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		logger.Get().Warn("Status webhook delivery failed",
			zap.String("order_number", order.OrderNumber),
			zap.Error(err),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Get().Warn("Status webhook rejected",
			zap.String("order_number", order.OrderNumber),
			zap.Int("status_code", resp.StatusCode),
		)
	}
}
