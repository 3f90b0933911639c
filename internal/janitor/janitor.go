package janitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"life-balance-planner/pkg/log"
)

const (
	// DefaultSchedule runs the cleanup daily at 03:00.
	DefaultSchedule = "0 3 * * *"
	// DefaultRetention keeps recommendations for 30 days.
	DefaultRetention = 30 * 24 * time.Hour
)

var ErrNoCleaner = errors.New("janitor: cleaner is required")

// Cleaner removes records older than a retention window.
type Cleaner interface {
	ClearOld(ctx context.Context, olderThan time.Duration) (int, error)
}

// Config tunes the janitor. Zero values use the defaults.
type Config struct {
	Schedule  string
	Retention time.Duration
}

// Janitor runs a Cleaner on a cron schedule.
type Janitor struct {
	l         log.Logger
	cleaner   Cleaner
	cron      *cron.Cron
	retention time.Duration
}

// New validates the schedule and registers the cleanup job.
func New(l log.Logger, cleaner Cleaner, cfg Config) (*Janitor, error) {
	if cleaner == nil {
		return nil, ErrNoCleaner
	}
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}

	j := &Janitor{
		l:         l,
		cleaner:   cleaner,
		cron:      cron.New(),
		retention: cfg.Retention,
	}
	if _, err := j.cron.AddFunc(cfg.Schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("janitor: invalid schedule %q: %w", cfg.Schedule, err)
	}
	return j, nil
}

// RunOnce performs one cleanup pass.
func (j *Janitor) RunOnce(ctx context.Context) (int, error) {
	removed, err := j.cleaner.ClearOld(ctx, j.retention)
	if err != nil {
		j.l.Errorf(ctx, "janitor.RunOnce: %v", err)
		return 0, err
	}
	j.l.Debugf(ctx, "janitor.RunOnce: removed %d", removed)
	return removed, nil
}

// Run starts the scheduler and blocks until ctx is done. A job that is
// already running is allowed to finish.
func (j *Janitor) Run(ctx context.Context) {
	j.cron.Start()
	<-ctx.Done()
	<-j.cron.Stop().Done()
}
