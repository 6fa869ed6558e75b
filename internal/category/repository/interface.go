package repository

import (
	"context"

	"inventory-management/internal/model"
)

// Repository is the store-facing side of the category domain.
type Repository interface {
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
	// GetCategory returns a zero Category (ID == "") when nothing matches.
	GetCategory(ctx context.Context, id string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	// UpdateCategory returns ErrNotFound when the document vanished.
	UpdateCategory(ctx context.Context, opt UpdateCategoryOptions) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
