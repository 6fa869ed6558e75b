package usecase

import (
	"inventory-management/internal/category"
	"inventory-management/internal/item"
	"inventory-management/pkg/log"
)

// implUseCase is the private implementation of search.UseCase.
type implUseCase struct {
	categories category.UseCase
	items      item.UseCase
	l          log.Logger
}

// New creates a search UseCase that reads through the category and item use cases.
func New(categories category.UseCase, items item.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		categories: categories,
		items:      items,
		l:          l,
	}
}
