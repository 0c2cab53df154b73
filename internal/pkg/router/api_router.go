package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/planopay/asaas-bridge/app/controllers"
)

type ApiRouter struct {
	checkout *controllers.CheckoutController
	webhook  *controllers.WebhookController
}

func NewApiRouter(checkout *controllers.CheckoutController, webhook *controllers.WebhookController) *ApiRouter {
	return &ApiRouter{checkout: checkout, webhook: webhook}
}

func (h *ApiRouter) InstallRouter(app *fiber.App) {
	app.Get("/", controllers.HandleStatus)

	// The checkout endpoint is browser-facing; cap per-client request rates.
	app.Get("/checkout/asaas", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	}), h.checkout.HandleCheckout)

	// No rate limiting here: Asaas delivers bursts from a small egress IP set
	// and every delivery must be acknowledged with 200, or the provider starts
	// redelivering and pauses the queue.
	app.Post("/webhook/asaas", h.webhook.HandleWebhook)
}
