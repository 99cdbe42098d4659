// logger.go - Structured request logging with zerolog

package middleware // Declares the package name

import ( // Import required packages
	"time" // Request latency

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog"    // Structured logging
)

// LoggerKey is the gin context key holding the request-scoped logger.
const LoggerKey = "logger"

// RequestLogger stores a request-scoped logger in the context and writes one line per request.
// Level follows the final status: 5xx error, 4xx warn, anything else info.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := base.With().Str("request_id", GetRequestID(c)).Logger()
		c.Set(LoggerKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = reqLog.Error()
			if err := c.Errors.Last(); err != nil {
				e = e.Err(err.Err)
			}
		case status >= 400:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}

		e.Dur("latency", time.Since(start)).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("ip", c.ClientIP()).
			Msg("API")
	}
}

// GetLogger returns the request-scoped logger, or a disabled logger outside RequestLogger.
func GetLogger(c *gin.Context) zerolog.Logger {
	if l, ok := c.Get(LoggerKey); ok {
		if reqLog, ok := l.(zerolog.Logger); ok {
			return reqLog
		}
	}
	return zerolog.Nop()
}
