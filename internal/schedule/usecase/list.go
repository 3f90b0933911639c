package usecase

import (
	"context"
	"errors"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/schedule"
	"life-balance-planner/internal/schedule/repository"
)

// List returns the current schedule in start order.
func (uc *implUseCase) List(ctx context.Context) ([]model.ScheduleEvent, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.List: %v", err)
		return nil, err
	}
	return events, nil
}

// Detail returns one block of the current schedule.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.ScheduleEvent, error) {
	e, err := uc.repo.GetEvent(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.ScheduleEvent{}, schedule.ErrEventNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "schedule.usecase.Detail: %v", err)
		return model.ScheduleEvent{}, err
	}
	return e, nil
}
