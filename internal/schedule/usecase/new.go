package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/schedule"
	"life-balance-planner/internal/schedule/repository"
	"life-balance-planner/pkg/gcalendar"
	pkgLog "life-balance-planner/pkg/log"
)

// Block layout of a generated day.
const (
	DayStartMinute       = 9 * 60
	AcademicBlockMinutes = 120
	BreakBlockMinutes    = 30
	WellnessBlockMinutes = 60

	BreakTitle = "Break & Recharge"
)

// CalendarExporter receives generated blocks. *gcalendar.Client satisfies it.
type CalendarExporter interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	tasks     schedule.TaskSource
	publisher advisory.Publisher
	exporter  CalendarExporter
	location  *time.Location
	now       func() time.Time
	newID     func() string

	running atomic.Bool
}

// Option customises the schedule use case.
type Option func(*implUseCase)

// WithExporter mirrors every generated block to a calendar.
func WithExporter(e CalendarExporter) Option {
	return func(uc *implUseCase) { uc.exporter = e }
}

// WithLocation sets the timezone days are planned in.
func WithLocation(loc *time.Location) Option {
	return func(uc *implUseCase) {
		if loc != nil {
			uc.location = loc
		}
	}
}

// New creates a new schedule UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, tasks schedule.TaskSource, publisher advisory.Publisher, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:         l,
		repo:      repo,
		tasks:     tasks,
		publisher: publisher,
		location:  time.Local,
		now:       time.Now,
		newID:     newID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
