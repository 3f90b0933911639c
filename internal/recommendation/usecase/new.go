package usecase

import (
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/recommendation"
	"life-balance-planner/internal/recommendation/analyzer"
	"life-balance-planner/internal/recommendation/repository"
	pkgLog "life-balance-planner/pkg/log"
)

// DefaultRetention is how long ClearOld keeps recommendations by default.
const DefaultRetention = 30 * 24 * time.Hour

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	analyzer  *analyzer.Analyzer
	tasks     recommendation.TaskSource
	planning  recommendation.PlanningSource
	publisher advisory.Publisher
	now       func() time.Time
	newID     func() string
}

// New creates a new recommendation UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	an *analyzer.Analyzer,
	tasks recommendation.TaskSource,
	planning recommendation.PlanningSource,
	publisher advisory.Publisher,
) *implUseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		analyzer:  an,
		tasks:     tasks,
		planning:  planning,
		publisher: publisher,
		now:       time.Now,
		newID:     newID,
	}
}
