package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/planopay/asaas-bridge/app/controllers"
	"github.com/planopay/asaas-bridge/internal/pkg/billing"
	prommetrics "github.com/planopay/asaas-bridge/internal/pkg/billing/metrics/prometheus"
	"github.com/planopay/asaas-bridge/internal/pkg/cache"
	"github.com/planopay/asaas-bridge/internal/pkg/env"
	"github.com/planopay/asaas-bridge/internal/pkg/router"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("startup failed: %v", err)
	}
	err = app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, error) {
	env.SetupEnvFile()

	zlog := newLogger()
	cache.SetupCache(zlog)

	cfg, err := billing.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.Metrics = prommetrics.DefaultMetrics("asaasbridge")

	client := billing.NewClient(cfg, zlog)
	service := billing.NewService(client, cfg, zlog)

	app := fiber.New(fiber.Config{
		AppName: "asaas-bridge",
	})

	// recovery, access logging and CORS for frontend checkout calls
	app.Use(recover.New(), logger.New(), cors.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	router.InstallRouter(app,
		controllers.NewCheckoutController(service, zlog),
		controllers.NewWebhookController(cfg.Metrics, zlog),
	)

	return app, nil
}

func newLogger() zerolog.Logger {
	if env.IsDev() {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
