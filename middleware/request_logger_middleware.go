package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kemo-beep/effectai/application/ports/outbound"
)

// RequestLogger logs one line per request with the id set by RequestID.
func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.InfoWithFields("Handled request", map[string]interface{}{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		})
	}
}
