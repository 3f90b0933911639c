package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/response"
)

// Today godoc
// @Summary     Get today's recommendation
// @Description Returns the most recently created recommendation.
// @Tags        Recommendations
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/recommendations/today [GET]
func (h *handler) Today(c *gin.Context) {
	rec, err := h.uc.Today(c.Request.Context())
	if err != nil {
		h.respondError(c, "Today", err)
		return
	}

	response.OK(c, newRecommendationResp(rec))
}

// List godoc
// @Summary     List recommendations
// @Tags        Recommendations
// @Produce     json
// @Param       status query string false "pending, accepted or dismissed"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/recommendations [GET]
func (h *handler) List(c *gin.Context) {
	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	recs, err := h.uc.List(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "List", err)
		return
	}

	response.OK(c, newListResp(recs))
}

// Detail godoc
// @Summary     Get a recommendation
// @Tags        Recommendations
// @Produce     json
// @Param       id path string true "Recommendation ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/recommendations/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	rec, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Detail", err)
		return
	}

	response.OK(c, newRecommendationResp(rec))
}

// Refresh godoc
// @Summary     Generate a fresh recommendation
// @Description Analyzes the latest planning data against the open tasks.
// @Tags        Recommendations
// @Produce     json
// @Success     201 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/recommendations/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	rec, err := h.uc.Refresh(c.Request.Context())
	if err != nil {
		h.respondError(c, "Refresh", err)
		return
	}

	response.Created(c, newRecommendationResp(rec))
}

// Accept godoc
// @Summary     Accept a recommendation
// @Tags        Recommendations
// @Produce     json
// @Param       id path string true "Recommendation ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp
// @Router      /api/v1/recommendations/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	rec, err := h.uc.Accept(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Accept", err)
		return
	}

	response.OK(c, newRecommendationResp(rec))
}

// Dismiss godoc
// @Summary     Dismiss a recommendation
// @Tags        Recommendations
// @Produce     json
// @Param       id path string true "Recommendation ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Failure     409 {object} response.Resp
// @Router      /api/v1/recommendations/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	rec, err := h.uc.Dismiss(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Dismiss", err)
		return
	}

	response.OK(c, newRecommendationResp(rec))
}

// Statistics godoc
// @Summary     Recommendation statistics
// @Tags        Recommendations
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/recommendations/stats [GET]
func (h *handler) Statistics(c *gin.Context) {
	s, err := h.uc.Statistics(c.Request.Context())
	if err != nil {
		h.respondError(c, "Statistics", err)
		return
	}

	response.OK(c, newStatsResp(s))
}
