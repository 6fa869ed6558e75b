package http

import (
	"errors"
	"net/http"

	"inventory-management/internal/auth"
	pkgErrors "inventory-management/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	}
	return pkgErrors.FromKind(err)
}
