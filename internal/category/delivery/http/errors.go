package http

import (
	"errors"
	"net/http"

	"inventory-management/internal/category"
	pkgErrors "inventory-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, category.ErrCategoryNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, category.ErrCategoryNotFound.Error())
	case errors.Is(err, category.ErrNameUnchanged):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "new name is the same as the current one")
	default:
		return pkgErrors.FromKind(err)
	}
}
