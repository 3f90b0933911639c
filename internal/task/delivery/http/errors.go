package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/task"
	"life-balance-planner/pkg/response"
)

var errMissingID = errors.New("id is required")

// mapError translates domain errors into HTTP errors. Unknown errors are
// reported as nil so the caller answers with a 500.
func (h *handler) mapError(err error) *response.Err {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewErr(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidCategory),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidEffort),
		errors.Is(err, task.ErrInvalidMetric):
		return response.NewErr(http.StatusBadRequest, err.Error())
	default:
		return nil
	}
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.HTTPError(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "task.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
