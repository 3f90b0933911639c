package usecase

import (
	"context"
	"time"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation"
	repo "life-balance-planner/internal/recommendation/repository"
	"life-balance-planner/pkg/metrics"
)

// Accept marks a pending recommendation as accepted.
func (uc *implUseCase) Accept(ctx context.Context, id string) (model.AIRecommendation, error) {
	return uc.resolve(ctx, id, model.RecommendationAccepted)
}

// Dismiss marks a pending recommendation as dismissed.
func (uc *implUseCase) Dismiss(ctx context.Context, id string) (model.AIRecommendation, error) {
	return uc.resolve(ctx, id, model.RecommendationDismissed)
}

func (uc *implUseCase) resolve(ctx context.Context, id string, status model.RecommendationStatus) (model.AIRecommendation, error) {
	rec, err := uc.repo.ResolveRecommendation(ctx, repo.ResolveRecommendationOptions{
		ID:         id,
		Status:     status,
		ResolvedAt: uc.now(),
	})
	if err != nil {
		return model.AIRecommendation{}, mapRepoErr(err)
	}
	metrics.RecordRecommendation(string(status), 1)
	return rec, nil
}

// ClearOld removes recommendations created more than olderThan ago.
func (uc *implUseCase) ClearOld(ctx context.Context, olderThan time.Duration) (int, error) {
	if olderThan <= 0 {
		return 0, recommendation.ErrInvalidRetention
	}

	removed, err := uc.repo.DeleteCreatedBefore(ctx, uc.now().Add(-olderThan))
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.ClearOld: %v", err)
		return 0, err
	}
	if removed > 0 {
		metrics.RecordRecommendation("cleared", removed)
		uc.l.Infof(ctx, "recommendation.usecase.ClearOld: removed %d recommendations", removed)
	}
	return removed, nil
}
