package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/middleware"
)

func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/search", mw.Auth(), h.Search)
}
