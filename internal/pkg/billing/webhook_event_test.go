package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookEventPaymentConfirmed(t *testing.T) {
	payload := []byte(`{
		"id": "evt_05b708f961d739ea7eba7e4db318f621",
		"event": "PAYMENT_CONFIRMED",
		"dateCreated": "2026-08-29 10:00:00",
		"payment": {
			"id": "pay_080225913252",
			"customer": "cus_G7Dvo4iphUNk",
			"value": 49.9,
			"status": "CONFIRMED",
			"invoiceUrl": "https://www.asaas.com/i/080225913252",
			"billingType": "CREDIT_CARD"
		}
	}`)

	event, err := ParseWebhookEvent(payload)
	require.NoError(t, err)
	assert.True(t, event.IsPaymentConfirmed())
	assert.Equal(t, "evt_05b708f961d739ea7eba7e4db318f621", event.ID)
	assert.Equal(t, "cus_G7Dvo4iphUNk", event.Payment.Customer)
	assert.Equal(t, "pay_080225913252", event.Payment.ID)
	assert.InDelta(t, 49.9, event.Payment.Value, 1e-9)
}

func TestParseWebhookEventOtherEvent(t *testing.T) {
	event, err := ParseWebhookEvent([]byte(`{"event":"PAYMENT_OVERDUE","payment":{"customer":"cus_1"}}`))
	require.NoError(t, err)
	assert.False(t, event.IsPaymentConfirmed())
	assert.Equal(t, "cus_1", event.Payment.Customer)
}

func TestParseWebhookEventInvalidJSON(t *testing.T) {
	_, err := ParseWebhookEvent([]byte("not json"))
	assert.Error(t, err)
}
