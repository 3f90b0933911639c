package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/middleware"
)

// RegisterRoutes maps recommendation routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/recommendations", mw.Auth())
	{
		g.GET("", h.List)
		g.GET("/today", h.Today)
		g.GET("/stats", h.Statistics)
		g.POST("/refresh", h.Refresh)
		g.GET("/:id", h.Detail)
		g.POST("/:id/accept", h.Accept)
		g.POST("/:id/dismiss", h.Dismiss)
	}
}
