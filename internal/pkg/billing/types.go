package billing

// Customer mirrors the fields of the Asaas customer resource this service
// reads. The provider owns the record; nothing is kept beyond the request.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerList struct {
	Data []Customer `json:"data"`
}

// Subscription mirrors the Asaas subscription resource.
type Subscription struct {
	ID          string  `json:"id"`
	Customer    string  `json:"customer"`
	Value       float64 `json:"value"`
	Cycle       string  `json:"cycle"`
	Description string  `json:"description"`
	NextDueDate string  `json:"nextDueDate"`
}

// SubscriptionRequest is the payload for POST /subscriptions.
type SubscriptionRequest struct {
	Customer          string  `json:"customer"`
	BillingType       string  `json:"billingType"`
	Cycle             string  `json:"cycle"`
	NextDueDate       string  `json:"nextDueDate"`
	Value             float64 `json:"value"`
	Description       string  `json:"description"`
	ExternalReference string  `json:"externalReference,omitempty"`
}

// PaymentLink is the provider-hosted page where the end customer pays.
type PaymentLink struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// PaymentLinkRequest is the payload for POST /paymentLinks.
type PaymentLinkRequest struct {
	Name         string `json:"name"`
	ChargeType   string `json:"chargeType"`
	Subscription string `json:"subscription"`
}

// Payment is one scheduled payment of a subscription.
type Payment struct {
	ID         string  `json:"id"`
	Customer   string  `json:"customer"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
	InvoiceURL string  `json:"invoiceUrl"`
}

type paymentList struct {
	Data []Payment `json:"data"`
}
