package docstore

import (
	"context"
	"errors"
	"fmt"

	repo "inventory-management/internal/item/repository"
	"inventory-management/internal/model"
	pkgDocstore "inventory-management/pkg/docstore"
	pkgErrors "inventory-management/pkg/errors"
)

func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	now := opt.Now.UTC()
	fields := encode(opt.Name, opt.Description, opt.Quantity, opt.Price.InexactFloat64(), opt.CategoryID)
	fields[fieldCreatedAt] = now
	fields[fieldUpdatedAt] = now

	id, err := r.store.Create(ctx, collection, fields)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToInsert, err))
	}

	return model.Item{
		ID:          id,
		Name:        opt.Name,
		Description: opt.Description,
		Quantity:    opt.Quantity,
		Price:       opt.Price,
		CategoryID:  opt.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (r *implRepository) GetItem(ctx context.Context, id string) (model.Item, error) {
	doc, err := r.store.Get(ctx, collection, id)
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.Item{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToGet, err))
	}
	return decode(doc), nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	var (
		docs []pkgDocstore.Document
		err  error
	)
	if opt.CategoryID != "" {
		docs, err = r.store.Query(ctx, collection, fieldCategoryID, opt.CategoryID)
	} else {
		docs, err = r.store.List(ctx, collection)
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToList, err))
	}

	items := make([]model.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, decode(doc))
	}
	return items, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	fields := encode(opt.Name, opt.Description, opt.Quantity, opt.Price.InexactFloat64(), opt.CategoryID)
	fields[fieldUpdatedAt] = opt.Now.UTC()

	err := r.store.Update(ctx, collection, opt.ID, fields)
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToUpdate, err))
	}

	return r.GetItem(ctx, opt.ID)
}

func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	err := r.store.Delete(ctx, collection, id)
	if errors.Is(err, pkgDocstore.ErrNotFound) {
		return repo.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return pkgErrors.Unavailable(fmt.Errorf("%w: %w", repo.ErrFailedToDelete, err))
	}
	return nil
}
