package agent

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile          = errors.New("agent: file content is required")
	ErrMissingFileName      = errors.New("agent: file name is required")
	ErrInvalidURL           = errors.New("agent: API URL is required")
	ErrUnrecognizedResponse = errors.New("agent: response has no recognizable fields")
	ErrMalformedResponse    = errors.New("agent: malformed response")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API returned %d: %s", e.Code, e.Body)
}

// RejectedError is returned when the agent answers with success=false.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return "agent rejected the request"
	}
	return "agent rejected the request: " + e.Reason
}
