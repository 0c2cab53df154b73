package billing

import "encoding/json"

// EventPaymentConfirmed is the Asaas event type for a confirmed payment.
const EventPaymentConfirmed = "PAYMENT_CONFIRMED"

// WebhookEvent is the subset of an Asaas webhook notification this service
// inspects. Unknown fields are ignored; events are logged and discarded.
type WebhookEvent struct {
	ID      string         `json:"id"`
	Event   string         `json:"event"`
	Payment WebhookPayment `json:"payment"`
}

// WebhookPayment carries the payment details attached to payment events.
type WebhookPayment struct {
	ID         string  `json:"id"`
	Customer   string  `json:"customer"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
	InvoiceURL string  `json:"invoiceUrl"`
}

// ParseWebhookEvent decodes a webhook body. Receipt does not depend on this
// succeeding; the receiver acknowledges either way.
func ParseWebhookEvent(payload []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// IsPaymentConfirmed reports whether the event notifies a confirmed payment.
func (e *WebhookEvent) IsPaymentConfirmed() bool {
	return e.Event == EventPaymentConfirmed
}
