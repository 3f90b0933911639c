package recommendation

import (
	"context"
	"time"

	"life-balance-planner/internal/document"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task"
)

// UseCase is the recommendation store together with the pipeline that
// fills it.
type UseCase interface {
	// HandleDocument records a recommendation for a processed document.
	// It has the document.Listener signature.
	HandleDocument(ctx context.Context, doc model.UploadedDocument, analysis *document.Analysis)
	// Refresh builds a recommendation from the latest planning data and the
	// open tasks. On failure nothing is stored.
	Refresh(ctx context.Context) (model.AIRecommendation, error)

	Today(ctx context.Context) (model.AIRecommendation, error)
	Detail(ctx context.Context, id string) (model.AIRecommendation, error)
	List(ctx context.Context, input ListInput) ([]model.AIRecommendation, error)

	Accept(ctx context.Context, id string) (model.AIRecommendation, error)
	Dismiss(ctx context.Context, id string) (model.AIRecommendation, error)

	Statistics(ctx context.Context) (Stats, error)
	// ClearOld removes recommendations created more than olderThan ago.
	ClearOld(ctx context.Context, olderThan time.Duration) (int, error)
}

// TaskSource provides the open tasks an analysis weighs.
type TaskSource interface {
	List(ctx context.Context, input task.ListInput) (task.ListOutput, error)
}

// PlanningSource provides the latest extracted planning data.
type PlanningSource interface {
	LatestPlanningData(ctx context.Context) (*model.PlanningData, error)
}
