package backend

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBaseURL = errors.New("backend: base URL is invalid")
	// ErrUnauthorized is returned when a request is still rejected after one
	// token refresh, or when no refresh was possible.
	ErrUnauthorized = errors.New("backend: unauthorized")
)

// APIError is a failure envelope or a non-2xx status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %d: %s", e.Status, e.Message)
}
