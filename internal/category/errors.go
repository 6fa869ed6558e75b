package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("category name is required")
	ErrNameTooLong      = errors.New("category name is too long")
	ErrNameUnchanged    = errors.New("category name is unchanged")
)
