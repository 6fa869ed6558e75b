package usecase

import (
	"context"
	"strings"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
	"inventory-management/internal/model"
)

// List returns every item in store order.
func (uc *implUseCase) List(ctx context.Context) (item.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListOutput{}, err
	}
	return item.ListOutput{Items: items}, nil
}

// ListByCategory returns the items whose categoryId equals categoryID.
func (uc *implUseCase) ListByCategory(ctx context.Context, categoryID string) (item.ListOutput, error) {
	if strings.TrimSpace(categoryID) == "" {
		return item.ListOutput{Items: []model.Item{}}, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{CategoryID: categoryID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListByCategory ListItems: %v", err)
		return item.ListOutput{}, err
	}
	return item.ListOutput{Items: items}, nil
}

// Detail returns one item. A blank id is NotFound without touching the store.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailOutput, error) {
	if strings.TrimSpace(id) == "" {
		return item.DetailOutput{}, notFound()
	}

	it, err := uc.repo.GetItem(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetItem: %v", err)
		return item.DetailOutput{}, err
	}
	if it.ID == "" {
		return item.DetailOutput{}, notFound()
	}
	return item.DetailOutput{Item: it}, nil
}
