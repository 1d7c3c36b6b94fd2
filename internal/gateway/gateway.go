// Package gateway provides the client for the external SMS vendor API.
package gateway

import (
	"context"
	"errors"
)

// SendStatus is the vendor's answer for an accepted request.
type SendStatus string

const (
	// SendStatusDelivered means the vendor accepted the message for delivery.
	SendStatusDelivered SendStatus = "delivered"
	// SendStatusRejected means the vendor refused the message and supplied a reason.
	SendStatusRejected SendStatus = "rejected"
)

// Transport and response-shape failures, kept distinct so callers never
// have to branch on raw vendor JSON.
var (
	// ErrUnreachable indicates a network failure before any vendor response.
	ErrUnreachable = errors.New("sms gateway unreachable")
	// ErrMalformedResponse indicates a response body that is not the vendor's JSON shape.
	ErrMalformedResponse = errors.New("sms gateway returned a malformed response")
	// ErrRateLimited indicates the vendor throttled the request.
	ErrRateLimited = errors.New("sms gateway rate limit exceeded")
	// ErrUnavailable indicates the circuit breaker is rejecting calls.
	ErrUnavailable = errors.New("sms gateway temporarily unavailable")
)

// SendInput carries one outbound message. Endpoint overrides the
// configured send URL when non-empty.
type SendInput struct {
	Phone    string
	Message  string
	Key      string
	Endpoint string
}

// SendResult is the tagged outcome of a send call that reached the vendor.
type SendResult struct {
	Status         SendStatus
	TextID         string
	QuotaRemaining int
	// Reason holds the vendor-supplied error text when Status is rejected.
	Reason string
}

// Client talks to the SMS vendor.
type Client interface {
	// Send submits one message. A nil error means the vendor answered;
	// inspect the result's Status. Transport failures return one of the
	// typed errors above.
	Send(ctx context.Context, input SendInput) (*SendResult, error)

	// Quota returns the remaining sendable message count for the key.
	// endpoint overrides the configured quota URL when non-empty.
	Quota(ctx context.Context, apiKey, endpoint string) (int, error)

	// BreakerState reports the circuit breaker state for health checks.
	BreakerState() string
}
