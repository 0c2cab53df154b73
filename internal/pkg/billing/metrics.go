package billing

import "time"

// Metrics collects operational metrics for the Asaas integration.
// Implementations must be safe for concurrent use.
type Metrics interface {
	// RecordAPICall records an outbound Asaas call with a normalized outcome
	// ("success", "upstream_error", "decode_error", "network_error").
	// op is a normalized operation name such as "/customers"; raw request
	// paths carry query strings and resource ids and must not be used here,
	// or the label set grows without bound.
	RecordAPICall(op, outcome string)

	// RecordAPICallDuration records the latency of an outbound Asaas call.
	RecordAPICallDuration(op string, duration time.Duration)

	// RecordCheckout records a finished checkout ("success" or "error").
	RecordCheckout(outcome string)

	// RecordWebhookEvent records a received webhook event with an outcome
	// ("processed", "duplicate", "unparsed").
	RecordWebhookEvent(eventType, outcome string)
}

// NoopMetrics is a Metrics implementation that records nothing.
type NoopMetrics struct{}

func (NoopMetrics) RecordAPICall(_, _ string)                       {}
func (NoopMetrics) RecordAPICallDuration(_ string, _ time.Duration) {}
func (NoopMetrics) RecordCheckout(_ string)                         {}
func (NoopMetrics) RecordWebhookEvent(_, _ string)                  {}
