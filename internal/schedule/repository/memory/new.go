package memory

import (
	"context"
	"sync"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/schedule/repository"
)

type implRepository struct {
	mu     sync.RWMutex
	events []model.ScheduleEvent
}

// New creates an in-memory schedule repository.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) ReplaceEvents(ctx context.Context, events []model.ScheduleEvent) error {
	next := make([]model.ScheduleEvent, len(events))
	copy(next, events)

	r.mu.Lock()
	r.events = next
	r.mu.Unlock()
	return nil
}

func (r *implRepository) ListEvents(ctx context.Context) ([]model.ScheduleEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.ScheduleEvent, len(r.events))
	copy(out, r.events)
	return out, nil
}

func (r *implRepository) GetEvent(ctx context.Context, id string) (model.ScheduleEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return model.ScheduleEvent{}, repository.ErrNotFound
}
