package recommendation

import "life-balance-planner/internal/model"

// ListInput filters List. An empty Status lists everything.
type ListInput struct {
	Status model.RecommendationStatus
}

// Stats summarises the stored recommendations.
type Stats struct {
	Total             int
	Accepted          int
	Dismissed         int
	Pending           int
	AverageConfidence float64
}
