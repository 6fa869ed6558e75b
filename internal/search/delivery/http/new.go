package http

import (
	"inventory-management/internal/search"
	"inventory-management/pkg/log"
)

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New creates a new HTTP handler for search.
func New(l log.Logger, uc search.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
