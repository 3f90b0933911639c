package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
	repo "life-balance-planner/internal/task/repository"
)

// Update applies the non-nil fields of input to the matching task.
// An unknown id changes nothing and reports task.ErrTaskNotFound.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	current, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}

	updated := applyUpdate(current, input)
	if err := validateTask(updated); err != nil {
		return model.Task{}, err
	}
	updated.UpdatedAt = uc.now()

	saved, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: updated})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: UpdateTask: %v", err)
		return model.Task{}, fmt.Errorf("update task: %w", mapRepoErr(err))
	}

	if err := uc.recalculateLocked(ctx); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: recalculate: %v", err)
	}
	return saved, nil
}

// Delete removes the task with id.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	if err := uc.recalculateLocked(ctx); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: recalculate: %v", err)
	}
	uc.l.Infof(ctx, "task.usecase.Delete: id=%s", id)
	return nil
}

func applyUpdate(t model.Task, in task.UpdateInput) model.Task {
	if in.Title != nil {
		t.Title = strings.TrimSpace(*in.Title)
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.DueDate != nil {
		t.DueDate = *in.DueDate
	}
	if in.Time != nil {
		t.Time = *in.Time
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	if in.Effort != nil {
		t.Effort = *in.Effort
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	return t
}
