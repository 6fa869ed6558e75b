package repository

import (
	"context"

	"inventory-management/internal/model"
)

// Repository is the store-facing side of the item domain.
type Repository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetItem returns a zero Item (ID == "") when nothing matches.
	GetItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	// UpdateItem returns ErrNotFound when the document is absent.
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
