package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/document"
	"life-balance-planner/pkg/log"
)

// Handler is the HTTP delivery for document ingestion.
type Handler interface {
	Upload(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Delete(c *gin.Context)
	LatestPlanningData(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      document.UseCase
	maxSize int64
}

// New creates a new HTTP handler for documents. maxSize bounds the
// uploaded file in bytes.
func New(l log.Logger, uc document.UseCase, maxSize int64) Handler {
	return &handler{l: l, uc: uc, maxSize: maxSize}
}
