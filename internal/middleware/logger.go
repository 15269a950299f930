package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"property-service/internal/logger"
)

const TraceHeader = "X-Trace-ID"

// RequestLogger tags each request with a trace id, puts a request-scoped
// logger into the request context and logs start and finish.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}
		c.Header(TraceHeader, traceID)

		reqLogger := base.With("trace_id", traceID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLogger))

		httpLogger := reqLogger.With(
			"http_method", c.Request.Method,
			"http_path", c.Request.URL.Path,
			"remote_addr", c.ClientIP(),
		)
		start := time.Now()
		httpLogger.Debug("request started")

		c.Next()

		// gin reports -1 until the body is written
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}
		httpLogger.Info("request finished",
			"status_code", c.Writer.Status(),
			"bytes_written", size,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
