package repository

import "life-balance-planner/internal/model"

// CreateTaskOptions holds the stored fields of a new task. The ID is assigned by the caller.
type CreateTaskOptions struct {
	Task model.Task
}

// ListTasksOptions filters listed tasks. Zero values match everything.
type ListTasksOptions struct {
	Category  model.Category
	Completed *bool
}

// UpdateTaskOptions replaces the stored task with the same ID.
type UpdateTaskOptions struct {
	Task model.Task
}
