package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/middleware"
)

// RegisterRoutes maps /items and /categories/:id/items. All routes require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items", mw.Auth())
	{
		items.GET("", h.List)
		items.POST("", h.Create)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}

	rg.GET("/categories/:id/items", mw.Auth(), h.ListByCategory)
}
