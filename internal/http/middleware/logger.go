package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request, shaped like utils.LogEvent so the
// access log and the module logs interleave cleanly.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("[HTTP] action=%s request_id=%s path=%s status=%d latency=%s ip=%s",
			c.Request.Method,
			GetRequestID(c),
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			c.ClientIP(),
		)
	}
}
