package memory

import (
	"sync"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	order []string
	tasks map[string]model.Task
}

// New creates an in-memory task repository.
func New() repository.Repository {
	return &implRepository{
		tasks: make(map[string]model.Task),
	}
}
