package middleware

// Common error codes used across middleware and handlers
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeUnauthorized      = "UNAUTHORIZED"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

// Common error messages used across middleware and handlers
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageUnauthorized      = "Unauthorized"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)
