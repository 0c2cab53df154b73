package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/planopay/asaas-bridge/internal/pkg/billing"
	"github.com/planopay/asaas-bridge/internal/pkg/cache"
)

// WebhookController receives Asaas payment lifecycle notifications. Receipt is
// always acknowledged with 200, so the provider never redelivers; processing
// outcomes show up only in logs and metrics.
type WebhookController struct {
	metrics billing.Metrics
	log     zerolog.Logger
}

func NewWebhookController(metrics billing.Metrics, log zerolog.Logger) *WebhookController {
	if metrics == nil {
		metrics = billing.NoopMetrics{}
	}
	return &WebhookController{metrics: metrics, log: log}
}

// HandleWebhook logs the incoming event body and acknowledges it. Known
// payment-confirmed events additionally get the customer id logged.
func (wc *WebhookController) HandleWebhook(c *fiber.Ctx) error {
	rawBody := append([]byte(nil), c.BodyRaw()...)
	wc.log.Info().Str("body", string(rawBody)).Msg("asaas webhook received")

	event, err := billing.ParseWebhookEvent(rawBody)
	if err != nil {
		wc.metrics.RecordWebhookEvent("UNKNOWN", "unparsed")
		return c.Status(fiber.StatusOK).Send(nil)
	}
	eventType := event.Event
	if eventType == "" {
		eventType = "UNKNOWN"
	}

	duplicate, err := cache.MarkWebhookSeen(event.ID)
	if err != nil {
		wc.log.Warn().Err(err).Str("event_id", event.ID).Msg("webhook dedup check failed")
	}
	if duplicate {
		wc.log.Info().Str("event_id", event.ID).Str("event", eventType).Msg("duplicate webhook delivery")
		wc.metrics.RecordWebhookEvent(eventType, "duplicate")
		return c.Status(fiber.StatusOK).Send(nil)
	}

	if event.IsPaymentConfirmed() {
		wc.log.Info().
			Str("event_id", event.ID).
			Str("payment", event.Payment.ID).
			Str("customer", event.Payment.Customer).
			Msg("payment confirmed")
		// TODO: activate the customer's plan in the commerce platform once
		// that integration exists.
	}

	wc.metrics.RecordWebhookEvent(eventType, "processed")
	return c.Status(fiber.StatusOK).Send(nil)
}
