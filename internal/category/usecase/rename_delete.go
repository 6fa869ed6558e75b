package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-management/internal/category"
	repo "inventory-management/internal/category/repository"
	pkgErrors "inventory-management/pkg/errors"
)

// Rename changes a category's name. Renaming to the current name is rejected.
func (uc *implUseCase) Rename(ctx context.Context, input category.RenameInput) (category.RenameOutput, error) {
	name, err := uc.normalizeName(input.Name)
	if err != nil {
		return category.RenameOutput{}, err
	}
	if strings.TrimSpace(input.ID) == "" {
		return category.RenameOutput{}, notFound()
	}

	existing, err := uc.repo.GetCategory(ctx, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rename GetCategory: %v", err)
		return category.RenameOutput{}, err
	}
	if existing.ID == "" {
		return category.RenameOutput{}, notFound()
	}
	if existing.Name == name {
		return category.RenameOutput{}, pkgErrors.InvalidArgument(category.ErrNameUnchanged)
	}

	c, err := uc.repo.UpdateCategory(ctx, repo.UpdateCategoryOptions{
		ID:   input.ID,
		Name: name,
		Now:  uc.now(),
	})
	if errors.Is(err, repo.ErrNotFound) {
		return category.RenameOutput{}, notFound()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Rename UpdateCategory: %v", err)
		return category.RenameOutput{}, err
	}
	if c.ID == "" {
		return category.RenameOutput{}, notFound()
	}
	return category.RenameOutput{Category: c}, nil
}

// Delete removes a category. Items referencing it are left as they are.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return notFound()
	}

	err := uc.repo.DeleteCategory(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteCategory: %v", err)
		return err
	}
	return nil
}
