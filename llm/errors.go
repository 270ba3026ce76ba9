package llm

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when the API replied with 2xx but the
// body lacks the expected choices/message content.
var ErrMalformedResponse = errors.New("API response is missing the expected content")

// AuthError indicates the endpoint rejected the configured API key.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// APIError indicates a non-2xx response that is not an authentication failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError indicates the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach the API endpoint: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func isAuthStatus(status int) bool {
	return status == 401 || status == 403
}
