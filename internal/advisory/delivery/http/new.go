package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/advisory"
	"life-balance-planner/pkg/log"
)

// Handler is the HTTP delivery for advisory messages.
type Handler interface {
	History(c *gin.Context)
}

type handler struct {
	l      log.Logger
	reader advisory.Reader
}

// New creates a new HTTP handler over the advisory history.
func New(l log.Logger, reader advisory.Reader) Handler {
	return &handler{l: l, reader: reader}
}
