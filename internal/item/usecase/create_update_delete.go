package usecase

import (
	"context"
	"errors"
	"strings"

	"inventory-management/internal/item"
	repo "inventory-management/internal/item/repository"
)

// Create validates the form values and stores a new item. The category is not
// checked for existence.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateInput) (item.CreateOutput, error) {
	f, err := uc.validate(input.Name, input.Description, input.Quantity, input.Price, input.CategoryID)
	if err != nil {
		return item.CreateOutput{}, err
	}

	it, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:        f.name,
		Description: f.description,
		Quantity:    f.quantity,
		Price:       f.price,
		CategoryID:  f.categoryID,
		Now:         uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return item.CreateOutput{}, err
	}
	return item.CreateOutput{Item: it}, nil
}

// Update overwrites every editable field of an existing item.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateInput) (item.UpdateOutput, error) {
	f, err := uc.validate(input.Name, input.Description, input.Quantity, input.Price, input.CategoryID)
	if err != nil {
		return item.UpdateOutput{}, err
	}
	if strings.TrimSpace(input.ID) == "" {
		return item.UpdateOutput{}, notFound()
	}

	it, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        f.name,
		Description: f.description,
		Quantity:    f.quantity,
		Price:       f.price,
		CategoryID:  f.categoryID,
		Now:         uc.now(),
	})
	if errors.Is(err, repo.ErrNotFound) {
		return item.UpdateOutput{}, notFound()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return item.UpdateOutput{}, err
	}
	if it.ID == "" {
		return item.UpdateOutput{}, notFound()
	}
	return item.UpdateOutput{Item: it}, nil
}

// Delete removes an item.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return notFound()
	}

	err := uc.repo.DeleteItem(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return notFound()
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		return err
	}
	return nil
}
