package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	cycleMonthly           = "MONTHLY"
	billingTypeUndefined   = "UNDEFINED"
	chargeTypeSubscription = "SUBSCRIPTION"
	dueDateLayout          = "2006-01-02"
)

// Service orchestrates the checkout flow against Asaas. It resolves the
// customer, creates a subscription for the configured plan and obtains a
// payable URL for the caller.
type Service struct {
	client          *Client
	planValue       float64
	planDescription string
	linkStrategy    LinkStrategy
	metrics         Metrics
	log             zerolog.Logger
	now             func() time.Time
}

// NewService wires a checkout service from the loaded configuration.
func NewService(client *Client, cfg Config, log zerolog.Logger) *Service {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	strategy := cfg.LinkStrategy
	if strategy == "" {
		strategy = LinkStrategyPaymentLink
	}

	return &Service{
		client:          client,
		planValue:       cfg.PlanValue,
		planDescription: cfg.PlanDescription,
		linkStrategy:    strategy,
		metrics:         metrics,
		log:             log,
		now:             time.Now,
	}
}

// EnsureCustomer returns the provider record for the given email, creating it
// when absent. Exactly one search call is made, and one create call only when
// the search comes back empty.
func (s *Service) EnsureCustomer(ctx context.Context, email, name string) (*Customer, error) {
	customer, err := s.client.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	return s.client.CreateCustomer(ctx, email, name)
}

// Checkout runs the three-step flow and returns the invoice URL. Steps are
// strictly sequential; the first failure aborts the rest. Completed step
// identifiers are logged so orphaned provider records can be reconciled by
// hand; nothing upstream is rolled back on a later-step failure.
func (s *Service) Checkout(ctx context.Context, email, name string) (string, error) {
	customer, err := s.EnsureCustomer(ctx, email, name)
	if err != nil {
		s.metrics.RecordCheckout("error")
		return "", err
	}
	s.log.Info().Str("customer", customer.ID).Str("email", email).Msg("checkout: customer resolved")

	sub, err := s.client.CreateSubscription(ctx, SubscriptionRequest{
		Customer:          customer.ID,
		BillingType:       billingTypeUndefined,
		Cycle:             cycleMonthly,
		NextDueDate:       s.now().AddDate(0, 0, 1).Format(dueDateLayout),
		Value:             s.planValue,
		Description:       s.planDescription,
		ExternalReference: uuid.NewString(),
	})
	if err != nil {
		s.metrics.RecordCheckout("error")
		return "", err
	}
	s.log.Info().Str("customer", customer.ID).Str("subscription", sub.ID).Msg("checkout: subscription created")

	invoiceURL, err := s.payableURL(ctx, sub.ID)
	if err != nil {
		s.metrics.RecordCheckout("error")
		return "", err
	}

	s.metrics.RecordCheckout("success")
	s.log.Info().Str("subscription", sub.ID).Str("invoice_url", invoiceURL).Msg("checkout: payment link ready")
	return invoiceURL, nil
}

func (s *Service) payableURL(ctx context.Context, subscriptionID string) (string, error) {
	switch s.linkStrategy {
	case LinkStrategyFirstPayment:
		payments, err := s.client.ListSubscriptionPayments(ctx, subscriptionID)
		if err != nil {
			return "", err
		}
		if len(payments) == 0 {
			return "", ErrNoPaymentGenerated
		}
		return payments[0].InvoiceURL, nil
	default:
		link, err := s.client.CreatePaymentLink(ctx, PaymentLinkRequest{
			Name:         s.planDescription,
			ChargeType:   chargeTypeSubscription,
			Subscription: subscriptionID,
		})
		if err != nil {
			return "", err
		}
		return link.URL, nil
	}
}
