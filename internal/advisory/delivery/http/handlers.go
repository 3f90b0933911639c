package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/response"
)

// History godoc
// @Summary     Recent advisory messages
// @Description Oldest first. Without a limit every retained message is returned.
// @Tags        Messages
// @Produce     json
// @Param       limit query int false "Maximum number of messages (1-50)"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp
// @Router      /api/v1/messages [GET]
func (h *handler) History(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, errInvalidLimit)
		return
	}
	if err := q.validate(); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newHistoryResp(h.reader.History(q.Limit)))
}
