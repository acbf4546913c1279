package middleware

import (
	"net/http"
	"time"

	"plumbing_portal/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPanic = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An unexpected error occurred. Please try again later.", http.StatusInternalServerError)

// Logger writes one line per request.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.String("request_id", c.GetString(ContextRequestID)),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("[http] request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("[http] request", fields...)
		default:
			logger.Info("[http] request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("[http] recovered from panic",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(ContextRequestID)),
				)
				c.AbortWithStatusJSON(errPanic.HTTPStatus, errPanic.ToHTTPError())
			}
		}()
		c.Next()
	}
}
