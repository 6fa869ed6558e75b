package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/middleware"
)

// RegisterRoutes maps /auth. Login is public and rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", mw.LoginRateLimit(), h.Login)
		auth.POST("/logout", mw.Auth(), h.Logout)
	}
}
