package repository

import "time"

// CreateCategoryOptions holds the fields of a new category document.
type CreateCategoryOptions struct {
	Name string
	Now  time.Time
}

// UpdateCategoryOptions renames an existing category.
type UpdateCategoryOptions struct {
	ID   string
	Name string
	Now  time.Time
}
