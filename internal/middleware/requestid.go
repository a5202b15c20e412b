package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"specialist-router/pkg/log"
)

// RequestID tags each request with an id, reusing the caller's X-Request-ID
// when present. The id is echoed back and stored as the log trace id.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), id))
		c.Next()
	}
}
