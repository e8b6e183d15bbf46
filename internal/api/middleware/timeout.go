package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bassista/tourdesk/internal/logger"
	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds the request context, and with it every remote call the
// handler makes. Handlers are not interrupted; they must honor ctx.Done().
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		// a written response cannot be replaced
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			logger.WithComponent("http").Warnf("%s %s timed out after %v", c.Request.Method, c.Request.URL.Path, d)
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error": "request timeout",
			})
		}
	}
}
