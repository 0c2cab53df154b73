package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planopay/asaas-bridge/app/controllers"
	"github.com/planopay/asaas-bridge/internal/pkg/billing"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := billing.Config{
		Token:           "test-token",
		BaseURL:         "http://127.0.0.1:0",
		PlanValue:       49.9,
		PlanDescription: "Plano Premium",
		LinkStrategy:    billing.LinkStrategyPaymentLink,
	}
	service := billing.NewService(billing.NewClient(cfg, zerolog.Nop()), cfg, zerolog.Nop())

	app := fiber.New()
	InstallRouter(app,
		controllers.NewCheckoutController(service, zerolog.Nop()),
		controllers.NewWebhookController(nil, zerolog.Nop()),
	)
	return app
}

func TestStatusRoute(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Asaas redelivers and pauses its queue on anything but a 200, so webhook
// deliveries must never be rejected, no matter how fast they arrive.
func TestWebhookRouteAcknowledgesRapidDeliveries(t *testing.T) {
	app := newTestApp(t)

	for i := 1; i <= 20; i++ {
		req := httptest.NewRequest(http.MethodPost, "/webhook/asaas",
			strings.NewReader(`{"id":"evt_1","event":"PAYMENT_RECEIVED"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "delivery %d", i)
	}
}

func TestCheckoutRouteMissingParams(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/checkout/asaas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
