package usecase_test

import (
	"context"

	repo "inventory-management/internal/item/repository"
	"inventory-management/internal/model"
)

// fakeRepo counts store calls so validation can be shown to happen first.
type fakeRepo struct {
	calls int

	getFunc    func(id string) (model.Item, error)
	listFunc   func(opt repo.ListItemsOptions) ([]model.Item, error)
	updateFunc func(opt repo.UpdateItemOptions) (model.Item, error)
}

func (f *fakeRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	f.calls++
	return model.Item{ID: "new", Name: opt.Name}, nil
}

func (f *fakeRepo) GetItem(ctx context.Context, id string) (model.Item, error) {
	f.calls++
	if f.getFunc != nil {
		return f.getFunc(id)
	}
	return model.Item{}, nil
}

func (f *fakeRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, error) {
	f.calls++
	if f.listFunc != nil {
		return f.listFunc(opt)
	}
	return []model.Item{}, nil
}

func (f *fakeRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	f.calls++
	if f.updateFunc != nil {
		return f.updateFunc(opt)
	}
	return model.Item{ID: opt.ID}, nil
}

func (f *fakeRepo) DeleteItem(ctx context.Context, id string) error {
	f.calls++
	return nil
}
