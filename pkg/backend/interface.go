package backend

import (
	"context"

	"golang.org/x/oauth2"
)

// IBackend is a client for the planner REST API.
// Implementations are safe for concurrent use.
type IBackend interface {
	// Do sends body as JSON and decodes the envelope's data into out.
	// A nil out discards the data.
	Do(ctx context.Context, method, path string, body, out any) error
	// Token returns the current credentials.
	Token() *oauth2.Token

	ListTasks(ctx context.Context, completed *bool) (TaskList, error)
	AddTask(ctx context.Context, req AddTaskRequest) (Task, error)
	ToggleTask(ctx context.Context, id string) (Task, error)
	DeleteTask(ctx context.Context, id string) error
	Balance(ctx context.Context) (Balance, error)
	GenerateSchedule(ctx context.Context, date string) (Schedule, error)
	TodayRecommendation(ctx context.Context) (Recommendation, error)
	RefreshRecommendation(ctx context.Context) (Recommendation, error)
	Messages(ctx context.Context, limit int) (MessageList, error)
}

// New creates a new planner API client with the given configuration.
func New(cfg Config) (IBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newBackendImpl(cfg), nil
}
