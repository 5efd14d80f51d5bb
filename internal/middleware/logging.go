package middleware

import (
	"time"

	"ideagen-backend/pkg/logger"
	"ideagen-backend/pkg/tracer"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one logrus entry per request. Install it after otelgin so
// the entry carries the request's trace id.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		entry := logger.WithFields(logger.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"bytes":      c.Writer.Size(),
			"trace_id":   tracer.TraceID(c.Request.Context()),
		})

		switch {
		case status >= 500:
			entry.Error("request completed")
		case status >= 400:
			entry.Warn("request completed")
		default:
			entry.Info("request completed")
		}
	}
}
