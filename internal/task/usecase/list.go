package usecase

import (
	"context"
	"fmt"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
	repo "life-balance-planner/internal/task/repository"
)

// Detail returns a single task.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, mapRepoErr(err)
	}
	return t, nil
}

// List returns tasks in creation order.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		Category:  input.Category,
		Completed: input.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: ListTasks: %v", err)
		return task.ListOutput{}, fmt.Errorf("list tasks: %w", err)
	}
	return task.ListOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Balance returns the state computed after the last mutation.
func (uc *implUseCase) Balance(ctx context.Context) (task.BalanceOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return task.BalanceOutput{
		Status:  uc.state.Status,
		Metrics: uc.metrics,
		Counts:  uc.state.Counts,
	}, nil
}
