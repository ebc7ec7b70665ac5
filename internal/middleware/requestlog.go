package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/educrate/educrate-backend/internal/logger"
)

// RequestLogger logs one line per request with method, path, status and
// latency. SSE streams are skipped; their latency is the connection
// lifetime and only adds noise.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	reqLog := log.With("component", "http")
	return func(c *gin.Context) {
		if c.FullPath() == "/sse/stream" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		reqLog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
