package task

import (
	"life-balance-planner/internal/balance"
	"life-balance-planner/internal/model"
)

// --- UseCase Inputs ---

type AddInput struct {
	Title       string
	Category    model.Category
	Priority    model.Priority
	DueDate     string
	Time        string
	Duration    string
	Effort      int
	Description string
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	ID          string
	Title       *string
	Category    *model.Category
	Priority    *model.Priority
	Completed   *bool
	DueDate     *string
	Time        *string
	Duration    *string
	Effort      *int
	Description *string
}

type ListInput struct {
	Category  model.Category
	Completed *bool
}

type UpdateMetricsInput struct {
	Energy *int
	Stress *int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type BalanceOutput struct {
	Status  model.BalanceStatus
	Metrics model.UserMetrics
	Counts  balance.Counts
}
