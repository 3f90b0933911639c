package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"life-balance-planner/pkg/metrics"
)

// Metrics records request latency by route template. Unmatched routes are
// grouped under one label.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
