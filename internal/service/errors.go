package service

import (
	"errors"
	"fmt"

	"github.com/textdesk/textdesk/internal/models"
)

var (
	// ErrInvalidCredentials is returned for any signin failure; it never
	// distinguishes unknown emails from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotConfigured is returned when the gateway API key is missing.
	ErrNotConfigured = errors.New("sms gateway api key is not configured")
)

// SendRejectedError means the vendor answered but refused the message.
// The terminal failed record is attached for the response body.
type SendRejectedError struct {
	Message *models.Message
	Reason  string
}

func (e *SendRejectedError) Error() string {
	return fmt.Sprintf("sms gateway rejected message: %s", e.Reason)
}

// SendFailedError means the vendor could not be reached at all. The
// underlying transport error is kept for logs, never for clients.
type SendFailedError struct {
	Message *models.Message
	Err     error
}

func (e *SendFailedError) Error() string {
	return fmt.Sprintf("failed to reach sms gateway: %v", e.Err)
}

func (e *SendFailedError) Unwrap() error {
	return e.Err
}
