package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"life-balance-planner/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or generates a request id and attaches it to the
// request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
