package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"aufgabe/pkg/response"
)

// Auth checks the Authorization bearer token against the configured
// API token. A pass-through when no token is configured.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		got, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(m.token)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request to %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
