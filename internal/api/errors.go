package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrServiceUnavailable is returned when the quiz API cannot be reached.
var ErrServiceUnavailable = errors.New("quiz service unavailable")

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// ErrInvalidResponse indicates a 2xx body that does not match the expected
// shape.
type ErrInvalidResponse struct {
	Path string
	Err  error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
