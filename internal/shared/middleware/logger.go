package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger emits one access log line per request, tagged with the caller's
// identity when auth resolved one. Health probes log at debug so the
// checker does not flood the log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		evt := log.Info()
		if path == "/health" {
			evt = log.Debug()
		}

		evt = evt.
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int("bytes", c.Writer.Size()).
			Dur("latency_ms", time.Since(start)).
			Str("ip", c.ClientIP())

		if query != "" {
			evt = evt.Str("query", query)
		}
		if userID, ok := UserIDFromContext(c); ok {
			evt = evt.Str("user_id", userID.String())
		}

		evt.Msg("http request")
	}
}
