package backend

import "time"

const (
	// DefaultBaseURL is the planner API root.
	DefaultBaseURL = "http://localhost:8080/api/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// RefreshPath exchanges a refresh token for a new access token.
	RefreshPath = "/auth/refresh"
)
