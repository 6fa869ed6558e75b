package docstore

import (
	"fmt"

	"inventory-management/internal/category/repository"
	pkgDocstore "inventory-management/pkg/docstore"
	"inventory-management/pkg/log"
)

const (
	collection = "categorias"

	fieldName      = "nome"
	fieldCreatedAt = "criadoEm"
	fieldUpdatedAt = "atualizadoEm"
)

type implRepository struct {
	store pkgDocstore.Store
	l     log.Logger
}

// New creates a category Repository over the categorias collection.
func New(store pkgDocstore.Store, l log.Logger) repository.Repository {
	if store == nil {
		panic("category/repository/docstore: store is required")
	}
	return &implRepository{store: store, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("category/repository/docstore.%s", method)
}
