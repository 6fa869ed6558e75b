package http

import (
	"github.com/gin-gonic/gin"

	"inventory-management/internal/item"
	"inventory-management/internal/model"
	"inventory-management/internal/search"
	"inventory-management/pkg/response"
)

// List godoc
// @Summary     List items
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Name filter (case-insensitive)"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/items [GET]
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

	response.OK(c, h.newListResp(search.FilterItems(req.Query, output.Items)))
}

// ListByCategory godoc
// @Summary     List the items of a category
// @Description An unknown category yields an empty list.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path  string true  "Category ID"
// @Param       q  query string false "Name filter (case-insensitive)"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/categories/{id}/items [GET]
func (h *handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListByCategory(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByCategory: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(search.FilterItems(req.Query, output.Items)))
}

// Create godoc
// @Summary     Create an item
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body itemReq true "Item form"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid field"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toCreateInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(output.Item, ""))
}

// Detail godoc
// @Summary     Get an item
// @Description category_name falls back to a placeholder when the category was deleted.
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Item, h.categoryName(c, output.Item.CategoryID)))
}

// categoryName never fails the request: a missing category or a failed lookup
// both show the placeholder.
func (h *handler) categoryName(c *gin.Context, categoryID string) string {
	ctx := c.Request.Context()

	categories, err := h.categoryUC.List(ctx)
	if err != nil {
		h.l.Warnf(ctx, "categoryUC.List: %v", err)
		return model.CategoryPlaceholder
	}
	return item.CategoryName(categories.Categories, categoryID)
}

// Update godoc
// @Summary     Replace an item
// @Description Every editable field is overwritten.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string  true "Item ID"
// @Param       body body itemReq true "Item form"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid field"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processItemReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toUpdateInput(c.Param("id")))
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output.Item, ""))
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Items
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Item ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
