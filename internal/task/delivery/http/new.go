package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/task"
	"life-balance-planner/pkg/log"
)

// Handler is the HTTP delivery for the task store and user metrics.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Toggle(c *gin.Context)
	GetMetrics(c *gin.Context)
	UpdateMetrics(c *gin.Context)
	GetBalance(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
