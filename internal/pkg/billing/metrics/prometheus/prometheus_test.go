package prommetrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	m.RecordAPICall("/customers", "success")
	m.RecordAPICall("/customers", "success")
	m.RecordAPICall("/subscriptions", "upstream_error")
	m.RecordAPICallDuration("/customers", 120*time.Millisecond)
	m.RecordCheckout("error")
	m.RecordWebhookEvent("PAYMENT_CONFIRMED", "processed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("/customers", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.apiCallsTotal.WithLabelValues("/subscriptions", "upstream_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.checkoutsTotal.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.webhookEventsTotal.WithLabelValues("PAYMENT_CONFIRMED", "processed")))
}

func TestAPICallLabelNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg, "test")

	m.RecordAPICall("/customers", "success")
	m.RecordAPICallDuration("/customers", 50*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	labelsByMetric := map[string][]string{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var names []string
			for _, label := range metric.GetLabel() {
				names = append(names, label.GetName())
			}
			labelsByMetric[mf.GetName()] = names
		}
	}

	assert.ElementsMatch(t, []string{"operation", "outcome"}, labelsByMetric["test_billing_api_calls_total"])
	assert.ElementsMatch(t, []string{"operation"}, labelsByMetric["test_billing_api_call_duration_seconds"])
}
