package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (b *backendImpl) ListTasks(ctx context.Context, completed *bool) (TaskList, error) {
	path := "/tasks"
	if completed != nil {
		path += "?" + url.Values{"completed": {strconv.FormatBool(*completed)}}.Encode()
	}
	var out TaskList
	err := b.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (b *backendImpl) AddTask(ctx context.Context, req AddTaskRequest) (Task, error) {
	var out Task
	err := b.Do(ctx, http.MethodPost, "/tasks", req, &out)
	return out, err
}

func (b *backendImpl) ToggleTask(ctx context.Context, id string) (Task, error) {
	var out Task
	err := b.Do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id)+"/toggle", nil, &out)
	return out, err
}

func (b *backendImpl) DeleteTask(ctx context.Context, id string) error {
	return b.Do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
}

func (b *backendImpl) Balance(ctx context.Context) (Balance, error) {
	var out Balance
	err := b.Do(ctx, http.MethodGet, "/user/balance", nil, &out)
	return out, err
}

// GenerateSchedule plans date (YYYY-MM-DD), or today when date is empty.
func (b *backendImpl) GenerateSchedule(ctx context.Context, date string) (Schedule, error) {
	var body any
	if date != "" {
		body = map[string]string{"date": date}
	}
	var out Schedule
	err := b.Do(ctx, http.MethodPost, "/schedule/generate", body, &out)
	return out, err
}

func (b *backendImpl) TodayRecommendation(ctx context.Context) (Recommendation, error) {
	var out Recommendation
	err := b.Do(ctx, http.MethodGet, "/recommendations/today", nil, &out)
	return out, err
}

func (b *backendImpl) RefreshRecommendation(ctx context.Context) (Recommendation, error) {
	var out Recommendation
	err := b.Do(ctx, http.MethodPost, "/recommendations/refresh", nil, &out)
	return out, err
}

func (b *backendImpl) Messages(ctx context.Context, limit int) (MessageList, error) {
	path := "/messages"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out MessageList
	err := b.Do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
