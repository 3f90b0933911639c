package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/schedule"
	"life-balance-planner/pkg/response"
)

var errInvalidDate = errors.New("date must be YYYY-MM-DD")

func (h *handler) mapError(err error) *response.Err {
	switch {
	case errors.Is(err, schedule.ErrEventNotFound):
		return response.NewErr(http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrGenerationInProgress):
		return response.NewErr(http.StatusConflict, err.Error())
	default:
		return nil
	}
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.HTTPError(c, mapped)
		return
	}
	h.l.Errorf(c.Request.Context(), "schedule.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
