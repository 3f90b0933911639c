package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
	repo "life-balance-planner/internal/task/repository"
)

func newID() string {
	return uuid.New().String()
}

func validateTask(t model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return task.ErrEmptyTitle
	}
	if !t.Category.IsTaskCategory() {
		return task.ErrInvalidCategory
	}
	if !t.Priority.IsValid() {
		return task.ErrInvalidPriority
	}
	if t.Effort != 0 && (t.Effort < model.MinEffort || t.Effort > model.MaxEffort) {
		return task.ErrInvalidEffort
	}
	return nil
}

// recalculateLocked reclassifies the task set. Callers hold uc.mu.
func (uc *implUseCase) recalculateLocked(ctx context.Context) error {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	uc.state = uc.cfg.Thresholds.Classify(tasks)
	uc.metrics.BurnoutRisk = uc.state.BurnoutRisk

	if uc.state.Overloaded() {
		uc.l.Warnf(ctx, "task.usecase.recalculate: overloaded academics=%d wellness=%d",
			uc.state.Counts.Academics, uc.state.Counts.Wellness)
		uc.publisher.PublishAfter(ctx, uc.cfg.WarningDelay, advisory.OverloadWarning())
	}
	return nil
}

func mapRepoErr(err error) error {
	if err == repo.ErrNotFound {
		return task.ErrTaskNotFound
	}
	return err
}
