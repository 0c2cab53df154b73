package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// maxResponseBytes caps how much of a provider response is read into memory.
	maxResponseBytes = 1 << 20

	// excerptLimit caps how much raw body ends up in decode errors and logs.
	excerptLimit = 200
)

// Client performs authenticated JSON calls against the Asaas REST API.
// Authentication uses the access_token header, which is what Asaas v3 expects
// for server-side API keys.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        zerolog.Logger
	metrics    Metrics
}

// NewClient builds an Asaas client from the process configuration.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: httpClient,
		log:        log,
		metrics:    metrics,
	}
}

// call issues one JSON request and decodes the JSON response into out.
// The raw body is always read as text first: an empty success body counts as
// success with out left untouched, a non-JSON success body is a DecodeError.
// Failures are logged here with full detail; callers propagate them unchanged.
// op is the normalized operation name used as the metrics label; path may carry
// query strings and resource ids and must stay out of label values.
func (c *Client) call(ctx context.Context, method, path, op string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("asaas %s %s: encode request: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("asaas %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access_token", c.token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordAPICall(op, "network_error")
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("asaas request did not complete")
		return fmt.Errorf("asaas %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.metrics.RecordAPICallDuration(op, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.RecordAPICall(op, "network_error")
		return fmt.Errorf("asaas %s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordAPICall(op, "upstream_error")
		c.log.Error().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("body", string(raw)).
			Msg("asaas request failed")
		return &APIError{StatusCode: resp.StatusCode, Method: method, Path: path, Body: string(raw)}
	}

	// Some endpoints answer 2xx with no body at all.
	if len(raw) == 0 || out == nil {
		c.metrics.RecordAPICall(op, "success")
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		excerpt := truncate(string(raw), excerptLimit)
		c.metrics.RecordAPICall(op, "decode_error")
		c.log.Error().Str("method", method).Str("path", path).Str("body", excerpt).Msg("asaas response is not JSON")
		return &DecodeError{Path: path, Excerpt: excerpt}
	}

	c.metrics.RecordAPICall(op, "success")
	return nil
}

// FindCustomerByEmail searches customers by exact email match. Returns nil
// when nothing matches. With multiple matches the provider's first result is
// the canonical one; results are not re-sorted here.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	path := "/customers?email=" + url.QueryEscape(email)
	var list customerList
	if err := c.call(ctx, http.MethodGet, path, "/customers", nil, &list); err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		return nil, nil
	}
	return &list.Data[0], nil
}

// CreateCustomer registers a new customer with the provider.
func (c *Client) CreateCustomer(ctx context.Context, email, name string) (*Customer, error) {
	var customer Customer
	req := customerRequest{Name: name, Email: email}
	if err := c.call(ctx, http.MethodPost, "/customers", "/customers", req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateSubscription creates a recurring subscription for a customer.
func (c *Client) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error) {
	var sub Subscription
	if err := c.call(ctx, http.MethodPost, "/subscriptions", "/subscriptions", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreatePaymentLink creates a payment link resource for a subscription.
func (c *Client) CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (*PaymentLink, error) {
	var link PaymentLink
	if err := c.call(ctx, http.MethodPost, "/paymentLinks", "/paymentLinks", req, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// ListSubscriptionPayments returns the payments Asaas generated for a
// subscription, in provider order.
func (c *Client) ListSubscriptionPayments(ctx context.Context, subscriptionID string) ([]Payment, error) {
	path := fmt.Sprintf("/subscriptions/%s/payments", url.PathEscape(subscriptionID))
	var list paymentList
	if err := c.call(ctx, http.MethodGet, path, "/subscriptions/{id}/payments", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
