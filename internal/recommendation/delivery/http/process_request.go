package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/model"
	"life-balance-planner/internal/recommendation"
)

type listQuery struct {
	Status string `form:"status"`
}

func (h *handler) processListReq(c *gin.Context) (recommendation.ListInput, error) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return recommendation.ListInput{}, err
	}
	return recommendation.ListInput{Status: model.RecommendationStatus(q.Status)}, nil
}
