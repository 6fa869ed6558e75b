package docstore

import (
	"strings"

	"inventory-management/internal/model"
	pkgDocstore "inventory-management/pkg/docstore"
)

// decode is the only place item documents are interpreted. Absent fields take
// their defaults: placeholder name, empty description, zero numbers and times.
func decode(doc pkgDocstore.Document) model.Item {
	it := model.Item{ID: doc.ID, Name: model.UnnamedPlaceholder}

	if name, ok := pkgDocstore.String(doc.Fields, fieldName); ok && strings.TrimSpace(name) != "" {
		it.Name = name
	}
	it.Description, _ = pkgDocstore.String(doc.Fields, fieldDescription)
	it.CategoryID, _ = pkgDocstore.String(doc.Fields, fieldCategoryID)

	if q, ok := pkgDocstore.Int64(doc.Fields, fieldQuantity); ok && q > 0 {
		it.Quantity = q
	}
	if p, ok := pkgDocstore.Decimal(doc.Fields, fieldPrice, model.PriceDecimalPlaces); ok && p.IsPositive() {
		it.Price = p
	}

	it.CreatedAt, _ = pkgDocstore.Time(doc.Fields, fieldCreatedAt)
	it.UpdatedAt, _ = pkgDocstore.Time(doc.Fields, fieldUpdatedAt)
	return it
}

// encode writes the editable fields. Price is stored as a number for the documents
// the mobile app already reads.
func encode(name, description string, quantity int64, price float64, categoryID string) map[string]any {
	return map[string]any{
		fieldName:        name,
		fieldDescription: description,
		fieldQuantity:    quantity,
		fieldPrice:       price,
		fieldCategoryID:  categoryID,
	}
}
