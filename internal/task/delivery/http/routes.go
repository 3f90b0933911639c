package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/middleware"
)

// RegisterRoutes maps task and user routes. All routes require auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/toggle", h.Toggle)
	}

	user := rg.Group("/user", mw.Auth())
	{
		user.GET("/metrics", h.GetMetrics)
		user.PUT("/metrics", h.UpdateMetrics)
		user.GET("/balance", h.GetBalance)
	}
}
