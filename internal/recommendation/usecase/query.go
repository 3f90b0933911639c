package usecase

import (
	"context"
	"errors"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation"
	repo "life-balance-planner/internal/recommendation/repository"
)

// Today returns the most recently created recommendation.
func (uc *implUseCase) Today(ctx context.Context) (model.AIRecommendation, error) {
	rec, err := uc.repo.LatestRecommendation(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return model.AIRecommendation{}, recommendation.ErrNoRecommendation
	}
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Today: %v", err)
		return model.AIRecommendation{}, err
	}
	return rec, nil
}

// Detail returns one recommendation.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.AIRecommendation, error) {
	rec, err := uc.repo.GetRecommendation(ctx, id)
	if err != nil {
		return model.AIRecommendation{}, mapRepoErr(err)
	}
	return rec, nil
}

// List returns recommendations newest first, optionally by status.
func (uc *implUseCase) List(ctx context.Context, input recommendation.ListInput) ([]model.AIRecommendation, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, recommendation.ErrInvalidStatus
	}
	recs, err := uc.repo.ListRecommendations(ctx, repo.ListRecommendationsOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.List: %v", err)
		return nil, err
	}
	return recs, nil
}

// Statistics counts recommendations by status and averages the confidence
// of every stored recommendation.
func (uc *implUseCase) Statistics(ctx context.Context) (recommendation.Stats, error) {
	recs, err := uc.repo.ListRecommendations(ctx, repo.ListRecommendationsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "recommendation.usecase.Statistics: %v", err)
		return recommendation.Stats{}, err
	}

	var s recommendation.Stats
	var sum float64
	for _, r := range recs {
		s.Total++
		sum += r.Confidence
		switch r.Status {
		case model.RecommendationAccepted:
			s.Accepted++
		case model.RecommendationDismissed:
			s.Dismissed++
		default:
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.AverageConfidence = sum / float64(s.Total)
	}
	return s, nil
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return recommendation.ErrRecommendationNotFound
	case errors.Is(err, repo.ErrAlreadyResolved):
		return recommendation.ErrAlreadyResolved
	case errors.Is(err, repo.ErrInvalidStatus):
		return recommendation.ErrInvalidStatus
	default:
		return err
	}
}
