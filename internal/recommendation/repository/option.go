package repository

import (
	"time"

	"life-balance-planner/internal/model"
)

type CreateRecommendationOptions struct {
	Recommendation model.AIRecommendation
}

type ListRecommendationsOptions struct {
	Status model.RecommendationStatus
}

type ResolveRecommendationOptions struct {
	ID         string
	Status     model.RecommendationStatus
	ResolvedAt time.Time
}
