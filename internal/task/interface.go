package task

import (
	"context"

	"life-balance-planner/internal/model"
)

// UseCase is the task store. Every mutation recalculates the balance state
// before it returns.
type UseCase interface {
	// Task mutations
	Add(ctx context.Context, input AddInput) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, id string) (model.Task, error)

	// Queries
	Detail(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Balance(ctx context.Context) (BalanceOutput, error)

	// User metrics
	Metrics(ctx context.Context) (model.UserMetrics, error)
	UpdateMetrics(ctx context.Context, input UpdateMetricsInput) (model.UserMetrics, error)
}
