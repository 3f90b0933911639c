package http

import (
	"github.com/gin-gonic/gin"

	"life-balance-planner/internal/middleware"
)

// RegisterRoutes maps advisory routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/messages", mw.Auth(), h.History)
}
