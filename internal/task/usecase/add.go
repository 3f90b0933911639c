package usecase

import (
	"context"
	"fmt"
	"strings"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
	repo "life-balance-planner/internal/task/repository"
)

// Add stores a new task and recalculates the balance. A long task list
// raises a schedule suggestion after the configured delay.
func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (model.Task, error) {
	now := uc.now()
	t := model.Task{
		ID:          uc.newID(),
		Title:       strings.TrimSpace(input.Title),
		Category:    input.Category,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Time:        input.Time,
		Duration:    input.Duration,
		Effort:      input.Effort,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if err := validateTask(t); err != nil {
		return model.Task{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Add: CreateTask: %v", err)
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}

	if err := uc.recalculateLocked(ctx); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Add: recalculate: %v", err)
	}

	count, err := uc.repo.CountTasks(ctx)
	if err == nil && count > SuggestScheduleTaskCount {
		uc.publisher.PublishAfter(ctx, uc.cfg.SuggestionDelay, advisory.ScheduleSuggestion())
	}

	uc.l.Infof(ctx, "task.usecase.Add: id=%s category=%s total=%d", created.ID, created.Category, count)
	return created, nil
}
