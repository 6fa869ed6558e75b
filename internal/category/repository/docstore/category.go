package docstore

import (
	"context"
	"errors"
	"fmt"

	repo "inventory-management/internal/category/repository"
	"inventory-management/internal/model"
	pkgDocstore "inventory-management/pkg/docstore"
	pkgErrors "inventory-management/pkg/errors"
)

func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	now := opt.Now.UTC()
	id, err := r.store.Create(ctx, collection, map[string]any{
		fieldName:      opt.Name,
		fieldCreatedAt: now,
		fieldUpdatedAt: now,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToInsert, err))
	}

	return model.Category{ID: id, Name: opt.Name, CreatedAt: now, UpdatedAt: now}, nil
}

func (r *implRepository) GetCategory(ctx context.Context, id string) (model.Category, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetCategory"), err)
		return model.Category{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToGet, err))
	}
	return decode(doc), nil
}

func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	docs, err := r.store.List(ctx, collection)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToList, err))
	}

	categories := make([]model.Category, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, decode(doc))
	}
	return categories, nil
}

func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	now := opt.Now.UTC()
	err := r.store.Update(ctx, collection, opt.ID, map[string]any{
		fieldName:      opt.Name,
		fieldUpdatedAt: now,
	})
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err))
	}

	return r.GetCategory(ctx, opt.ID)
}

func (r *implRepository) DeleteCategory(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, collection, id)
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToDelete, err))
	}
	return nil
}
