package repository

import (
	"context"
	"time"

	"life-balance-planner/internal/model"
)

// Repository stores recommendations.
type Repository interface {
	CreateRecommendation(ctx context.Context, opt CreateRecommendationOptions) (model.AIRecommendation, error)
	GetRecommendation(ctx context.Context, id string) (model.AIRecommendation, error)
	// ListRecommendations returns matches, most recently created first.
	ListRecommendations(ctx context.Context, opt ListRecommendationsOptions) ([]model.AIRecommendation, error)
	// LatestRecommendation returns the most recently created recommendation.
	LatestRecommendation(ctx context.Context) (model.AIRecommendation, error)
	// ResolveRecommendation moves a pending recommendation to a final status.
	ResolveRecommendation(ctx context.Context, opt ResolveRecommendationOptions) (model.AIRecommendation, error)
	// DeleteCreatedBefore removes recommendations created before cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int, error)
}
