package usecase

import (
	"sync"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/balance"
	"life-balance-planner/internal/model"
	"life-balance-planner/internal/task/repository"
	pkgLog "life-balance-planner/pkg/log"
)

// SuggestScheduleTaskCount is the task count above which a schedule
// suggestion is raised after Add.
const SuggestScheduleTaskCount = 8

// Default advisory delays, mirroring how quickly the assistant "reacts".
const (
	DefaultSuggestionDelay = time.Second
	DefaultCompletionDelay = 500 * time.Millisecond
	DefaultWarningDelay    = 800 * time.Millisecond
)

// Default metrics a fresh user starts with.
const (
	DefaultEnergy = 85
	DefaultStress = 20
)

// Config tunes the task use case. Negative delays fall back to the defaults.
type Config struct {
	Thresholds      balance.Thresholds
	SuggestionDelay time.Duration
	CompletionDelay time.Duration
	WarningDelay    time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	publisher advisory.Publisher
	cfg       Config
	now       func() time.Time
	newID     func() string

	// mu serialises every mutation with the recalculation that follows it.
	mu      sync.Mutex
	metrics model.UserMetrics
	state   balance.Result
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, publisher advisory.Publisher, cfg Config) *implUseCase {
	cfg.Thresholds = cfg.Thresholds.WithDefaults()
	if cfg.SuggestionDelay < 0 {
		cfg.SuggestionDelay = DefaultSuggestionDelay
	}
	if cfg.CompletionDelay < 0 {
		cfg.CompletionDelay = DefaultCompletionDelay
	}
	if cfg.WarningDelay < 0 {
		cfg.WarningDelay = DefaultWarningDelay
	}

	uc := &implUseCase{
		l:         l,
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		newID:     newID,
		metrics: model.UserMetrics{
			Energy: DefaultEnergy,
			Stress: DefaultStress,
		},
	}
	uc.state = cfg.Thresholds.Classify(nil)
	uc.metrics.BurnoutRisk = uc.state.BurnoutRisk
	return uc
}

// DefaultConfig returns a Config with the stock delays and thresholds.
func DefaultConfig() Config {
	return Config{
		Thresholds:      balance.DefaultThresholds(),
		SuggestionDelay: DefaultSuggestionDelay,
		CompletionDelay: DefaultCompletionDelay,
		WarningDelay:    DefaultWarningDelay,
	}
}
