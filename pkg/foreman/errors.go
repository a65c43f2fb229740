package foreman

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrHostnameRequired       = errors.New("hostname is required")
	ErrIdentifierRequiresID   = errors.New("identifier must carry a numeric id")
	ErrUnsupportedFilterValue = errors.New("unsupported search filter value type")
	ErrCacheMiss              = errors.New("cache miss")
	ErrNATSBucketRequired     = errors.New("NATS bucket name is required")
)

// APIError represents a failed exchange with the Foreman API. One
// instance describes exactly one request/response pair and is never
// mutated after construction.
type APIError struct {
	// URL is the full URL of the failed request.
	URL string
	// StatusCode is the HTTP status returned by the server.
	StatusCode int
	// Message is the human-readable message extracted from the error body.
	Message string
	// Raw is the decoded error body as returned by the server.
	Raw map[string]interface{}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("foreman: %s (status %d, url %s)", e.Message, e.StatusCode, e.URL)
}

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsUnprocessable checks if the error is a validation error.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
