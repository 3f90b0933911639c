package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/document"
	"life-balance-planner/pkg/response"
)

var (
	errMissingFile    = errors.New("file is required")
	errBadCoefficient = errors.New("module_coefficient must be a number")
)

func (h *handler) mapError(err error) *response.Err {
	switch {
	case errors.Is(err, document.ErrDocumentNotFound):
		return response.NewErr(http.StatusNotFound, err.Error())
	case errors.Is(err, document.ErrTooLarge):
		return response.NewErr(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, document.ErrNotPDF):
		return response.NewErr(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, document.ErrEmptyName),
		errors.Is(err, document.ErrEmptyContent),
		errors.Is(err, document.ErrInvalidConfidence),
		errors.Is(err, document.ErrInvalidCoefficient),
		errors.Is(err, document.ErrInvalidDeadline):
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
	h.l.Errorf(c.Request.Context(), "document.delivery.http.%s: %v", op, err)
	response.InternalError(c, err)
}
