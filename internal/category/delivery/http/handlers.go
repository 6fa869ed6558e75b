package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/search"
	"inventory-management/pkg/response"
)

// List godoc
// @Summary     List categories
// @Description Returns every category. q narrows the list to names containing it.
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Name filter (case-insensitive)"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(search.FilterCategories(req.Query, output.Categories)))
}

// Create godoc
// @Summary     Create a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Category name"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Blank or too long name"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(output.Category))
}

// Detail godoc
// @Summary     Get a category
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Category))
}

// Rename godoc
// @Summary     Rename a category
// @Tags        Categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Category ID"
// @Param       body body renameReq true "New name"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Blank, too long or unchanged name"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories/{id} [PUT]
func (h *handler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRenameReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Rename(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Rename: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Category))
}

// Delete godoc
// @Summary     Delete a category
// @Description Items that reference the category are kept unchanged.
// @Tags        Categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
