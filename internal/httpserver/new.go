package httpserver

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	advisoryHTTP "life-balance-planner/internal/advisory/delivery/http"
	documentHTTP "life-balance-planner/internal/document/delivery/http"
	"life-balance-planner/internal/middleware"
	recommendationHTTP "life-balance-planner/internal/recommendation/delivery/http"
	scheduleHTTP "life-balance-planner/internal/schedule/delivery/http"
	taskHTTP "life-balance-planner/internal/task/delivery/http"
	"life-balance-planner/pkg/log"
)

// ShutdownFunc releases a dependency once the listener has stopped.
type ShutdownFunc func(ctx context.Context) error

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	taskHandler           taskHTTP.Handler
	scheduleHandler       scheduleHTTP.Handler
	documentHandler       documentHTTP.Handler
	recommendationHandler recommendationHTTP.Handler
	advisoryHandler       advisoryHTTP.Handler

	onShutdown   []ShutdownFunc
	shuttingDown *atomic.Bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	TaskHandler           taskHTTP.Handler
	ScheduleHandler       scheduleHTTP.Handler
	DocumentHandler       documentHTTP.Handler
	RecommendationHandler recommendationHTTP.Handler
	AdvisoryHandler       advisoryHTTP.Handler

	// OnShutdown runs in order after the listener stops accepting requests.
	OnShutdown []ShutdownFunc
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                     logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		mw:                    cfg.Middleware,
		taskHandler:           cfg.TaskHandler,
		scheduleHandler:       cfg.ScheduleHandler,
		documentHandler:       cfg.DocumentHandler,
		recommendationHandler: cfg.RecommendationHandler,
		advisoryHandler:       cfg.AdvisoryHandler,
		onShutdown:            cfg.OnShutdown,
		shuttingDown:          &atomic.Bool{},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
