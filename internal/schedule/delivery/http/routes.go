package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/middleware"
)

// RegisterRoutes maps schedule routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	g := rg.Group("/schedule", mw.Auth())
	{
		g.GET("", h.List)
		g.POST("/generate", h.Generate)
		g.GET("/:id", h.Detail)
	}
}
