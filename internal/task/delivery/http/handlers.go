package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/response"
)

// Create godoc
// @Summary     Add a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Add(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, "Create", err)
		return
	}

	response.Created(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Param       category  query string false "Category filter"
// @Param       completed query bool   false "Completion filter"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, "List", err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	t, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Detail", err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update, omitted fields are kept.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Update(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, "Update", err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "Delete", err)
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle task completion
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	t, err := h.uc.ToggleCompletion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Toggle", err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// GetMetrics godoc
// @Summary     Get user metrics
// @Tags        User
// @Success     200 {object} response.Resp
// @Router      /api/v1/user/metrics [GET]
func (h *handler) GetMetrics(c *gin.Context) {
	m, err := h.uc.Metrics(c.Request.Context())
	if err != nil {
		h.respondError(c, "GetMetrics", err)
		return
	}

	response.OK(c, newMetricsResp(m))
}

// UpdateMetrics godoc
// @Summary     Update energy and stress
// @Tags        User
// @Accept      json
// @Param       body body metricsReq true "Metrics"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/user/metrics [PUT]
func (h *handler) UpdateMetrics(c *gin.Context) {
	req, err := h.processMetricsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.UpdateMetrics(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondError(c, "UpdateMetrics", err)
		return
	}

	response.OK(c, newMetricsResp(m))
}

// GetBalance godoc
// @Summary     Get balance status
// @Tags        User
// @Success     200 {object} response.Resp
// @Router      /api/v1/user/balance [GET]
func (h *handler) GetBalance(c *gin.Context) {
	out, err := h.uc.Balance(c.Request.Context())
	if err != nil {
		h.respondError(c, "GetBalance", err)
		return
	}

	response.OK(c, h.newBalanceResp(out))
}
