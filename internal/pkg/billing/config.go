package billing

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/planopay/asaas-bridge/internal/pkg/env"
)

const (
	defaultAsaasBaseURL = "https://api.asaas.com/v3"
	defaultHTTPTimeout  = 15 * time.Second
)

// LinkStrategy selects how Checkout obtains the payable URL. The choice is
// fixed at process start, so every checkout of a deployment behaves the same.
type LinkStrategy string

const (
	// LinkStrategyPaymentLink creates a dedicated payment link resource
	// referencing the subscription.
	LinkStrategyPaymentLink LinkStrategy = "paymentlink"

	// LinkStrategyFirstPayment fetches the subscription's generated payment
	// list and uses the first entry's invoice URL.
	LinkStrategyFirstPayment LinkStrategy = "firstpayment"
)

// Config is the immutable process configuration for the Asaas integration.
// It is loaded once at startup and handed to the client and service; nothing
// reads the environment at request time.
type Config struct {
	Token           string       `validate:"required"`
	BaseURL         string       `validate:"required,url"`
	PlanValue       float64      `validate:"required,gt=0"`
	PlanDescription string       `validate:"required"`
	LinkStrategy    LinkStrategy `validate:"oneof=paymentlink firstpayment"`

	// HTTPClient overrides the outbound client, mainly for tests.
	// If nil, a default client with a 15s timeout is used.
	HTTPClient *http.Client

	// Metrics is optional; nil means no metrics are recorded.
	Metrics Metrics
}

// LoadConfig reads the Asaas settings from the environment and validates them.
// A missing or invalid required setting is a startup error.
func LoadConfig() (Config, error) {
	cfg := Config{
		Token:           env.GetEnv("ASAAS_TOKEN", ""),
		BaseURL:         env.GetEnv("ASAAS_BASE_URL", defaultAsaasBaseURL),
		PlanDescription: env.GetEnv("PLAN_DESCRIPTION", ""),
		LinkStrategy:    LinkStrategy(env.GetEnv("ASAAS_LINK_STRATEGY", string(LinkStrategyPaymentLink))),
	}

	rawValue := env.GetEnv("PLAN_VALUE", "")
	if rawValue == "" {
		return Config{}, fmt.Errorf("PLAN_VALUE is not set")
	}
	value, err := strconv.ParseFloat(rawValue, 64)
	if err != nil {
		return Config{}, fmt.Errorf("PLAN_VALUE %q is not a number: %w", rawValue, err)
	}
	cfg.PlanValue = value

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid Asaas configuration: %w", err)
	}

	return cfg, nil
}
