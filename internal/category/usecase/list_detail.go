package usecase

import (
	"context"
	"strings"

	"inventory-management/internal/category"
)

// List returns every category in store order.
func (uc *implUseCase) List(ctx context.Context) (category.ListOutput, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCategories: %v", err)
		return category.ListOutput{}, err
	}
	return category.ListOutput{Categories: categories}, nil
}

// Detail returns one category. A blank id is NotFound without touching the store.
func (uc *implUseCase) Detail(ctx context.Context, id string) (category.DetailOutput, error) {
	if strings.TrimSpace(id) == "" {
		return category.DetailOutput{}, notFound()
	}

	c, err := uc.repo.GetCategory(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetCategory: %v", err)
		return category.DetailOutput{}, err
	}
	if c.ID == "" {
		return category.DetailOutput{}, notFound()
	}
	return category.DetailOutput{Category: c}, nil
}
