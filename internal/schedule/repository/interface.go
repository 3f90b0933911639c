package repository

import (
	"context"

	"life-balance-planner/internal/model"
)

// Repository holds the current schedule.
type Repository interface {
	// ReplaceEvents swaps the whole schedule for events.
	ReplaceEvents(ctx context.Context, events []model.ScheduleEvent) error
	ListEvents(ctx context.Context) ([]model.ScheduleEvent, error)
	GetEvent(ctx context.Context, id string) (model.ScheduleEvent, error)
}
