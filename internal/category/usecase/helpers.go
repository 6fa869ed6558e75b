package usecase

import (
	"strings"
	"unicode/utf8"

	"inventory-management/internal/category"
	"inventory-management/internal/model"
	pkgErrors "inventory-management/pkg/errors"
)

// normalizeName trims the name and checks it fits a category.
func (uc *implUseCase) normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", pkgErrors.InvalidArgument(category.ErrNameRequired)
	}
	if utf8.RuneCountInString(name) > model.CategoryNameMaxLength {
		return "", pkgErrors.InvalidArgument(category.ErrNameTooLong)
	}
	return name, nil
}

func notFound() error {
	return pkgErrors.NotFound(category.ErrCategoryNotFound)
}
