package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/recommendation"
	"life-balance-planner/pkg/response"
)

func (h *handler) mapError(err error) *response.Err {
	switch {
	case errors.Is(err, recommendation.ErrRecommendationNotFound),
		errors.Is(err, recommendation.ErrNoRecommendation),
		errors.Is(err, recommendation.ErrNoPlanningData):
		return response.NewErr(http.StatusNotFound, err.Error())
	case errors.Is(err, recommendation.ErrAlreadyResolved):
		return response.NewErr(http.StatusConflict, err.Error())
	case errors.Is(err, recommendation.ErrInvalidStatus):
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
	h.l.Errorf(c.Request.Context(), "recommendation.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
