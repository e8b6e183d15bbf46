package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionChecker reports whether the admin is logged in.
type SessionChecker interface {
	IsAuthenticated(ctx context.Context) bool
}

// RequireSession rejects requests with 401 while no admin is logged in.
func RequireSession(s SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.IsAuthenticated(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}
