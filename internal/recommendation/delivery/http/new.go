package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/recommendation"
	"life-balance-planner/pkg/log"
)

// Handler is the HTTP delivery for recommendations.
type Handler interface {
	Today(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Refresh(c *gin.Context)
	Accept(c *gin.Context)
	Dismiss(c *gin.Context)
	Statistics(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New creates a new HTTP handler for the recommendation domain.
func New(l log.Logger, uc recommendation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
