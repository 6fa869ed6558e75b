package docstore

import (
	"fmt"

	"inventory-management/internal/item/repository"
	pkgDocstore "inventory-management/pkg/docstore"
	"inventory-management/pkg/log"
)

const (
	collection = "itens"

	fieldName        = "nome"
	fieldDescription = "descricao"
	fieldQuantity    = "quantidade"
	fieldPrice       = "valor"
	fieldCategoryID  = "categoriaId"
	fieldCreatedAt   = "criadoEm"
	fieldUpdatedAt   = "atualizadoEm"
)

type implRepository struct {
	store pkgDocstore.Store
	l     log.Logger
}

// New creates an item Repository over the itens collection.
func New(store pkgDocstore.Store, l log.Logger) repository.Repository {
	if store == nil {
		panic("item/repository/docstore: store is required")
	}
	return &implRepository{store: store, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/docstore.%s", method)
}
