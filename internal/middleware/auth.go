package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-management/pkg/response"
	"inventory-management/pkg/scope"
)

// Auth requires "Authorization: Bearer <token>" with a live session and stores the
// session in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.sessions.Verify(strings.TrimSpace(token))
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
