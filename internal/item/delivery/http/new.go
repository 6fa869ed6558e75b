package http

import (
	"inventory-management/internal/category"
	"inventory-management/internal/item"
	"inventory-management/pkg/log"
)

type handler struct {
	l          log.Logger
	uc         item.UseCase
	categoryUC category.UseCase
}

// New creates a new HTTP handler for the item domain. categoryUC resolves category
// names for item details.
func New(l log.Logger, uc item.UseCase, categoryUC category.UseCase) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		categoryUC: categoryUC,
	}
}
