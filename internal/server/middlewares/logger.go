package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

// Logger logs the start and the end of every request on the "http" logger.
// Requests without an X-Request-ID header get a generated one, echoed in the response.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		log := zap.S().Named("http").With(
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"ip", c.ClientIP(),
			"user-agent", c.Request.UserAgent(),
		)
		log.Debugw("request started", "time", start.Format(time.RFC3339))

		c.Next()

		for _, e := range c.Errors.Errors() {
			log.Error(e)
		}
		log.Infow("request completed",
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
