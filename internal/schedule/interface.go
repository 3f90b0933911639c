package schedule

import (
	"context"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
)

// UseCase generates and serves the daily schedule.
type UseCase interface {
	// Generate builds a fresh schedule from the open tasks and replaces the
	// current one. Only one generation runs at a time.
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	List(ctx context.Context) ([]model.ScheduleEvent, error)
	Detail(ctx context.Context, id string) (model.ScheduleEvent, error)
}

// TaskSource provides the tasks a schedule is generated from.
type TaskSource interface {
	List(ctx context.Context, input task.ListInput) (task.ListOutput, error)
}
