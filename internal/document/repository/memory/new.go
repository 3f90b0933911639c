package memory

import (
	"sync"

	"life-balance-planner/internal/document/repository"
	"life-balance-planner/internal/model"
)

type implRepository struct {
	mu    sync.RWMutex
	order []string
	docs  map[string]model.UploadedDocument
}

// New creates an in-memory document repository.
func New() repository.Repository {
	return &implRepository{
		docs: make(map[string]model.UploadedDocument),
	}
}
