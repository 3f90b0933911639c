package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/schedule"
	"life-balance-planner/pkg/log"
)

// Handler is the HTTP delivery for the schedule.
type Handler interface {
	Generate(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
