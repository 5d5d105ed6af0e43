package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const webhookMaxBodyBytes = 65536

type WebhookHandler struct {
	checkoutCommands commands.CheckoutCommands
	webhookSecret    string
}

func NewWebhookHandler(checkoutCommands commands.CheckoutCommands, cfg config.StripeConfig) *WebhookHandler {
	return &WebhookHandler{
		checkoutCommands: checkoutCommands,
		webhookSecret:    cfg.WebhookSecret,
	}
}

// HandleStripeEvent verifies the provider signature and feeds checkout
// session events into reconciliation. Unknown event types are acknowledged
// so the provider does not retry them.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookMaxBodyBytes)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.webhookSecret)
	if err != nil {
		slog.Warn("webhook signature verification failed", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid signature",
		})
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			slog.Error("failed to parse checkout session payload", "error", err.Error())
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed event payload",
			})
			return
		}

		if err := h.checkoutCommands.HandleSessionEvent(c.Request.Context(), string(event.Type), session.ID); err != nil {
			// A 5xx makes the provider retry later; session events are
			// idempotent so the replay is safe.
			slog.Error("failed to apply checkout session event",
				"type", string(event.Type),
				"session_id", session.ID,
				"error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to process event",
			})
			return
		}
	default:
		slog.Debug("ignoring webhook event", "type", string(event.Type))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
