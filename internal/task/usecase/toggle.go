package usecase

import (
	"context"
	"fmt"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/model"
	repo "life-balance-planner/internal/task/repository"
)

// ToggleCompletion flips the completed flag. Completing a task raises a
// congratulation after the configured delay.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, id string) (model.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}

	t.Completed = !t.Completed
	t.UpdatedAt = uc.now()

	saved, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleCompletion: UpdateTask: %v", err)
		return model.Task{}, fmt.Errorf("toggle task: %w", mapRepoErr(err))
	}

	if saved.Completed {
		uc.publisher.PublishAfter(ctx, uc.cfg.CompletionDelay, advisory.TaskCompleted(saved.Title))
	}

	if err := uc.recalculateLocked(ctx); err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleCompletion: recalculate: %v", err)
	}
	return saved, nil
}
