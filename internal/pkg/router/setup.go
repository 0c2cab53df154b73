package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/planopay/asaas-bridge/app/controllers"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, checkout *controllers.CheckoutController, webhook *controllers.WebhookController) {
	setup(app, NewApiRouter(checkout, webhook))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
