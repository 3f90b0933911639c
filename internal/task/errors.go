package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("task title is required")
	ErrInvalidCategory = errors.New("invalid task category")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidEffort   = errors.New("effort level must be between 1 and 5")
	ErrInvalidMetric   = errors.New("energy and stress must be between 0 and 100")
)
