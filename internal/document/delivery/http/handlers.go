package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/response"
)

// Upload godoc
// @Summary     Upload a planning document
// @Description Stores the PDF and analyzes it in the background. Poll the document for its status.
// @Tags        Documents
// @Accept      multipart/form-data
// @Produce     json
// @Param       file                 formData file   true  "PDF document"
// @Param       new_task_description formData string false "Task the document relates to"
// @Param       confidence_level     formData string false "low, medium or high"
// @Param       module_coefficient   formData number false "Module weight"
// @Param       task_deadline        formData string false "YYYY-MM-DD"
// @Success     202 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Failure     413 {object} response.Resp
// @Failure     415 {object} response.Resp
// @Failure     429 {object} response.Resp
// @Router      /api/v1/documents [POST]
func (h *handler) Upload(c *gin.Context) {
	input, err := h.processUploadReq(c)
	if err != nil {
		if mapped := h.mapError(err); mapped != nil {
			response.HTTPError(c, mapped)
			return
		}
		response.Error(c, err)
		return
	}

	doc, err := h.uc.Upload(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, "Upload", err)
		return
	}

	response.Accepted(c, newDocumentResp(doc))
}

// List godoc
// @Summary     List uploaded documents
// @Tags        Documents
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/documents [GET]
func (h *handler) List(c *gin.Context) {
	docs, err := h.uc.List(c.Request.Context())
	if err != nil {
		h.respondError(c, "List", err)
		return
	}

	response.OK(c, newListResp(docs))
}

// Detail godoc
// @Summary     Get a document
// @Tags        Documents
// @Produce     json
// @Param       id path string true "Document ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/documents/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	doc, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "Detail", err)
		return
	}

	response.OK(c, newDocumentResp(doc))
}

// Delete godoc
// @Summary     Delete a document
// @Tags        Documents
// @Param       id path string true "Document ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp
// @Router      /api/v1/documents/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, "Delete", err)
		return
	}

	response.OK(c, nil)
}

// LatestPlanningData godoc
// @Summary     Planning data of the most recently processed document
// @Description Data is null when no document has been processed yet.
// @Tags        Documents
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/documents/latest/planning-data [GET]
func (h *handler) LatestPlanningData(c *gin.Context) {
	pd, err := h.uc.LatestPlanningData(c.Request.Context())
	if err != nil {
		h.respondError(c, "LatestPlanningData", err)
		return
	}

	response.OK(c, pd)
}
