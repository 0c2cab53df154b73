package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/planopay/asaas-bridge/internal/pkg/billing"
)

// Metrics implements billing.Metrics using Prometheus.
type Metrics struct {
	apiCallsTotal      *prometheus.CounterVec
	apiCallDuration    *prometheus.HistogramVec
	checkoutsTotal     *prometheus.CounterVec
	webhookEventsTotal *prometheus.CounterVec
}

// NewMetrics creates a Prometheus metrics implementation registered on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		apiCallsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "api_calls_total",
			Help:      "Total number of outbound calls to the Asaas API.",
		}, []string{"operation", "outcome"}),

		apiCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "api_call_duration_seconds",
			Help:      "Duration of outbound Asaas API calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),

		checkoutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "checkouts_total",
			Help:      "Total number of finished checkout flows.",
		}, []string{"outcome"}),

		webhookEventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "billing",
			Name:      "webhook_events_total",
			Help:      "Total number of webhook events received from Asaas.",
		}, []string{"event_type", "outcome"}),
	}
}

func (m *Metrics) RecordAPICall(op, outcome string) {
	m.apiCallsTotal.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) RecordAPICallDuration(op string, duration time.Duration) {
	m.apiCallDuration.WithLabelValues(op).Observe(duration.Seconds())
}

func (m *Metrics) RecordCheckout(outcome string) {
	m.checkoutsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordWebhookEvent(eventType, outcome string) {
	m.webhookEventsTotal.WithLabelValues(eventType, outcome).Inc()
}

// DefaultMetrics returns a Metrics implementation using the default Prometheus
// registerer.
func DefaultMetrics(namespace string) billing.Metrics {
	return NewMetrics(prometheus.DefaultRegisterer, namespace)
}
