package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-management/internal/search"
	pkgErrors "inventory-management/pkg/errors"
	"inventory-management/pkg/response"
)

// Search godoc
// @Summary     Search categories and items
// @Description Case-insensitive substring match: categories by name, items by name or description. Categories are listed first.
// @Tags        Search
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Search text"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Empty query"
// @Failure     503 {object} response.Resp "Store unavailable"
// @Router      /api/v1/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Search(ctx, search.SearchInput{Query: req.Query})
	if err != nil {
		h.l.Warnf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}

func (h *handler) mapError(err error) error {
	if pkgErrors.IsInvalidArgument(err) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "type something to search for")
	}
	return pkgErrors.FromKind(err)
}
