package tmdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// Common errors
var (
	// ErrMissingCredentials indicates the client was built without a bearer
	// token or API key.
	ErrMissingCredentials = errors.New("tmdb: bearer token or API key is required")
)

// NetworkError represents a transport-level failure: connection refused,
// DNS failure, timeout. The underlying cause is available via Unwrap.
type NetworkError struct {
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("tmdb: request failed: %v", e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx response from the API, carrying the status
// code and the raw response body.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("tmdb: API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the error indicates the request was throttled
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// DecodingError represents a 2xx response whose body could not be decoded
// into the expected model. Target names the model type.
type DecodingError struct {
	Target string
	Err    error
}

// Error implements the error interface
func (e *DecodingError) Error() string {
	return fmt.Sprintf("tmdb: failed to decode %s: %v", e.Target, e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodingError) Unwrap() error {
	return e.Err
}

// IsCancellation reports whether err is a caller-initiated abort. The client
// returns the context's error bare when a call is cancelled mid-flight, so
// this is equivalent to errors.Is against the context errors.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// targetName resolves the model type name recorded in a DecodingError.
func targetName(dst any) string {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	return t.String()
}
