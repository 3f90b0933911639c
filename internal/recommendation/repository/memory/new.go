package memory

import (
	"sync"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation/repository"
)

// entry pairs a recommendation with its creation sequence, which breaks
// ties between equal timestamps.
type entry struct {
	rec model.AIRecommendation
	seq uint64
}

type implRepository struct {
	mu      sync.RWMutex
	nextSeq uint64
	recs    map[string]entry
}

// New creates an in-memory recommendation repository.
func New() repository.Repository {
	return &implRepository{
		recs: make(map[string]entry),
	}
}

// newer reports whether a was created after b.
func newer(a, b entry) bool {
	if !a.rec.CreatedAt.Equal(b.rec.CreatedAt) {
		return a.rec.CreatedAt.After(b.rec.CreatedAt)
	}
	return a.seq > b.seq
}
