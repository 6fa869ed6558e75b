package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/middleware"
)

// RegisterRoutes maps /categories. All routes require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	categories := rg.Group("/categories", mw.Auth())
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.GET("/:id", h.Detail)
		categories.PUT("/:id", h.Rename)
		categories.DELETE("/:id", h.Delete)
	}
}
