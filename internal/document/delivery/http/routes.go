package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/middleware"
)

// RegisterRoutes maps document routes. Uploads are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/documents", mw.Auth())
	{
		g.POST("", mw.RateLimit(), h.Upload)
		g.GET("", h.List)
		g.GET("/latest/planning-data", h.LatestPlanningData)
		g.GET("/:id", h.Detail)
		g.DELETE("/:id", h.Delete)
	}
}
