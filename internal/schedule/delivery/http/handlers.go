package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/response"
)

// Generate godoc
// @Summary     Generate today's schedule
// @Description Replaces the current schedule. Returns 409 while another generation runs.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body generateReq false "Target date (YYYY-MM-DD)"
// @Success     200 {object} response.Resp
// @Failure     409 {object} response.Resp
// @Router      /api/v1/schedule/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Generate(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "Generate", err)
		return
	}

	response.OK(c, newGenerateResp(out))
}

// List godoc
// @Summary     Get the current schedule
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/schedule [GET]
func (h *handler) List(c *gin.Context) {
	events, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "List", err)
		return
	}

	response.OK(c, newEventsResp(events))
}

// Detail godoc
// @Summary     Get one schedule block
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/schedule/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	e, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Detail", err)
		return
	}

	response.OK(c, newEventResp(e))
}
