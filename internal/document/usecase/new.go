package usecase

import (
	"sync"
	"time"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/internal/document"
	"life-balance-planner/internal/document/repository"
	"life-balance-planner/pkg/agent"
	pkgLog "life-balance-planner/pkg/log"
)

// Defaults applied to agent answers that leave fields out.
const (
	DefaultConfidence     = 0.85
	DefaultRecommendation = "Task analyzed successfully"
)

const (
	DefaultStudentName       = "Student"
	DefaultMaxSize           = 10 << 20
	DefaultModuleCoefficient = 1.0
	DefaultConfidenceLevel   = agent.ConfidenceMedium
)

// Config tunes the ingestion pipeline.
type Config struct {
	StudentName string
	// Timeout bounds one analysis. Zero uses agent.DefaultTimeout.
	Timeout time.Duration
	MaxSize int64
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	agent     agent.IAgent
	publisher advisory.Publisher
	cfg       Config
	now       func() time.Time
	newID     func() string

	mu        sync.Mutex
	listeners []document.Listener
	waiters   map[string]chan struct{}
	inflight  sync.WaitGroup
}

// New creates a new document UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, ag agent.IAgent, publisher advisory.Publisher, cfg Config) *implUseCase {
	if cfg.StudentName == "" {
		cfg.StudentName = DefaultStudentName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = agent.DefaultTimeout
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		agent:     ag,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
		newID:     newID,
		waiters:   make(map[string]chan struct{}),
	}
}
