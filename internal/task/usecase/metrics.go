package usecase

import (
	"context"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
)

// Metrics returns the current user metrics.
func (uc *implUseCase) Metrics(ctx context.Context) (model.UserMetrics, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.metrics, nil
}

// UpdateMetrics sets energy and stress. Burnout risk stays owned by the
// balance classifier.
func (uc *implUseCase) UpdateMetrics(ctx context.Context, input task.UpdateMetricsInput) (model.UserMetrics, error) {
	if !inRange(input.Energy) || !inRange(input.Stress) {
		return model.UserMetrics{}, task.ErrInvalidMetric
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if input.Energy != nil {
		uc.metrics.Energy = *input.Energy
	}
	if input.Stress != nil {
		uc.metrics.Stress = *input.Stress
	}
	return uc.metrics, nil
}

func inRange(v *int) bool {
	return v == nil || (*v >= model.MinMetric && *v <= model.MaxMetric)
}
