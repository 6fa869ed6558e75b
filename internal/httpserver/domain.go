package httpserver

import (
	"github.com/gin-gonic/gin"

	authHTTP "inventory-management/internal/auth/delivery/http"
	authUC "inventory-management/internal/auth/usecase"
	"inventory-management/internal/category"
	categoryHTTP "inventory-management/internal/category/delivery/http"
	categoryRepo "inventory-management/internal/category/repository/docstore"
	categoryUC "inventory-management/internal/category/usecase"
	"inventory-management/internal/item"
	itemHTTP "inventory-management/internal/item/delivery/http"
	itemRepo "inventory-management/internal/item/repository/docstore"
	itemUC "inventory-management/internal/item/usecase"
	"inventory-management/internal/middleware"
	searchHTTP "inventory-management/internal/search/delivery/http"
	searchUC "inventory-management/internal/search/usecase"
)

// Each domain follows the same steps: repository over the shared store, usecase,
// HTTP handler, routes.

func (srv HTTPServer) setupAuthDomain(api *gin.RouterGroup, mw middleware.Middleware) {
	uc := authUC.New(srv.identity, srv.sessions, srv.l)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)
}

func (srv HTTPServer) setupCategoryDomain(api *gin.RouterGroup, mw middleware.Middleware) category.UseCase {
	repo := categoryRepo.New(srv.store, srv.l)
	uc := categoryUC.New(repo, srv.l)
	h := categoryHTTP.New(srv.l, uc)
	categoryHTTP.RegisterRoutes(api, h, mw)
	return uc
}

func (srv HTTPServer) setupItemDomain(api *gin.RouterGroup, mw middleware.Middleware, categories category.UseCase) item.UseCase {
	repo := itemRepo.New(srv.store, srv.l)
	uc := itemUC.New(repo, srv.l)
	h := itemHTTP.New(srv.l, uc, categories)
	itemHTTP.RegisterRoutes(api, h, mw)
	return uc
}

func (srv HTTPServer) setupSearchDomain(api *gin.RouterGroup, mw middleware.Middleware, categories category.UseCase, items item.UseCase) {
	uc := searchUC.New(categories, items, srv.l)
	h := searchHTTP.New(srv.l, uc)
	searchHTTP.RegisterRoutes(api, h, mw)
}
