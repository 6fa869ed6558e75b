package http

import (
	"errors"
	"net/http"

	"inventory-management/internal/item"
	pkgErrors "inventory-management/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, item.ErrItemNotFound.Error())
	default:
		return pkgErrors.FromKind(err)
	}
}
