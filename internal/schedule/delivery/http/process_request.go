package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processGenerateReq binds the optional generate body. An empty body plans today.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
