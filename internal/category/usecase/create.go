package usecase

import (
	"context"

	"inventory-management/internal/category"
	repo "inventory-management/internal/category/repository"
)

// Create persists the trimmed name as a new category.
func (uc *implUseCase) Create(ctx context.Context, input category.CreateInput) (category.CreateOutput, error) {
	name, err := uc.normalizeName(input.Name)
	if err != nil {
		return category.CreateOutput{}, err
	}

	c, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		Name: name,
		Now:  uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateCategory: %v", err)
		return category.CreateOutput{}, err
	}
	return category.CreateOutput{Category: c}, nil
}
