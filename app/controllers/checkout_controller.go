package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/planopay/asaas-bridge/internal/pkg/billing"
)

const missingParamsMessage = "Parâmetros email e name são obrigatórios"

// CheckoutController exposes the hosted-checkout endpoint. The billing service
// is injected once at startup; request handling reads no ambient state.
type CheckoutController struct {
	service *billing.Service
	log     zerolog.Logger
}

func NewCheckoutController(service *billing.Service, log zerolog.Logger) *CheckoutController {
	return &CheckoutController{service: service, log: log}
}

// HandleCheckout resolves the customer, creates a subscription for the
// configured plan and returns the provider-hosted invoice URL. Parameters are
// validated before any outbound call is made.
func (cc *CheckoutController) HandleCheckout(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	name := strings.TrimSpace(c.Query("name"))
	if email == "" || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": missingParamsMessage,
		})
	}

	invoiceURL, err := cc.service.Checkout(c.UserContext(), email, name)
	if err != nil {
		cc.log.Error().Err(err).Str("email", email).Msg("checkout failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "erro interno",
			"message": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"invoiceUrl": invoiceURL,
	})
}
