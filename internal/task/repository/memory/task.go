package memory

import (
	"context"

	"life-balance-planner/internal/model"
	repo "life-balance-planner/internal/task/repository"
)

// CreateTask appends opt.Task to the collection.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if opt.Task.ID == "" {
		return model.Task{}, repo.ErrMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[opt.Task.ID]; exists {
		return model.Task{}, repo.ErrDuplicateID
	}
	r.tasks[opt.Task.ID] = opt.Task
	r.order = append(r.order, opt.Task.ID)
	return opt.Task, nil
}

// GetTask returns the task with id or ErrNotFound.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrNotFound
	}
	return t, nil
}

// ListTasks returns matching tasks in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		if opt.Category != "" && t.Category != opt.Category {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// UpdateTask replaces the stored task in place, keeping its position.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[opt.Task.ID]; !ok {
		return model.Task{}, repo.ErrNotFound
	}
	r.tasks[opt.Task.ID] = opt.Task
	return opt.Task, nil
}

// DeleteTask removes the task with id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// CountTasks returns the number of stored tasks, completed ones included.
func (r *implRepository) CountTasks(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}
