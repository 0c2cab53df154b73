package billing

import (
	"errors"
	"fmt"
)

// ErrNoPaymentGenerated is returned by the first-payment link strategy when the
// provider has not generated any payment for the subscription yet.
var ErrNoPaymentGenerated = errors.New("subscription has no generated payments")

// APIError is returned when Asaas answers with a non-success HTTP status.
// Body carries the raw response text for logging; the provider's error schema
// is not interpreted.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("asaas %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// DecodeError is returned when a success response body cannot be parsed as
// JSON. Excerpt holds a truncated copy of the raw body for diagnostics.
type DecodeError struct {
	Path    string
	Excerpt string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("asaas returned a non-JSON response for %s", e.Path)
}
