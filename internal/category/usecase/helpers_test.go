package usecase_test

import (
	"context"

	repo "inventory-management/internal/category/repository"
	"inventory-management/internal/model"
)

// fakeRepo records how often the store side was reached.
type fakeRepo struct {
	calls int

	createFunc func(opt repo.CreateCategoryOptions) (model.Category, error)
	getFunc    func(id string) (model.Category, error)
	listFunc   func() ([]model.Category, error)
	updateFunc func(opt repo.UpdateCategoryOptions) (model.Category, error)
	deleteFunc func(id string) error
}

func (f *fakeRepo) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	f.calls++
	if f.createFunc != nil {
		return f.createFunc(opt)
	}
	return model.Category{ID: "new", Name: opt.Name}, nil
}

func (f *fakeRepo) GetCategory(ctx context.Context, id string) (model.Category, error) {
	f.calls++
	if f.getFunc != nil {
		return f.getFunc(id)
	}
	return model.Category{}, nil
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	f.calls++
	if f.listFunc != nil {
		return f.listFunc()
	}
	return nil, nil
}

func (f *fakeRepo) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	f.calls++
	if f.updateFunc != nil {
		return f.updateFunc(opt)
	}
	return model.Category{ID: opt.ID, Name: opt.Name}, nil
}

func (f *fakeRepo) DeleteCategory(ctx context.Context, id string) error {
	f.calls++
	if f.deleteFunc != nil {
		return f.deleteFunc(id)
	}
	return nil
}
