package docstore

import (
	"strings"

	"inventory-management/internal/model"
	pkgDocstore "inventory-management/pkg/docstore"
)

// decode is the only place category documents are interpreted. Missing or blank
// names become the placeholder, missing timestamps stay zero.
func decode(doc pkgDocstore.Document) model.Category {
	c := model.Category{ID: doc.ID, Name: model.UnnamedPlaceholder}

	if name, ok := pkgDocstore.String(doc.Fields, fieldName); ok && strings.TrimSpace(name) != "" {
		c.Name = name
	}
	c.CreatedAt, _ = pkgDocstore.Time(doc.Fields, fieldCreatedAt)
	c.UpdatedAt, _ = pkgDocstore.Time(doc.Fields, fieldUpdatedAt)
	return c
}
