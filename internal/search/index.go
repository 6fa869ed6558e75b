package search

import (
	"strings"

	"inventory-management/internal/model"
	pkgErrors "inventory-management/pkg/errors"
)

// Index matches query against already loaded categories and items. Matching is a
// case-insensitive substring test: categories on name, items on name or description.
// Categories come first, each group in input order. A blank query is an InvalidArgument.
func Index(query string, categories []model.Category, items []model.Item) ([]Result, error) {
	q := normalize(query)
	if strings.TrimSpace(q) == "" {
		return nil, pkgErrors.InvalidArgument(ErrEmptyQuery)
	}

	results := make([]Result, 0)
	for _, c := range categories {
		if strings.Contains(normalize(c.Name), q) {
			results = append(results, Result{Kind: KindCategory, ID: c.ID, Name: c.Name})
		}
	}
	for _, it := range items {
		if strings.Contains(normalize(it.Name), q) || strings.Contains(normalize(it.Description), q) {
			results = append(results, Result{
				Kind:        KindItem,
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				CategoryID:  it.CategoryID,
			})
		}
	}
	return results, nil
}

// FilterCategories keeps categories whose name contains query. An empty query keeps all.
func FilterCategories(query string, categories []model.Category) []model.Category {
	q := normalize(query)
	if q == "" {
		return categories
	}
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if strings.Contains(normalize(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterItems keeps items whose name contains query. An empty query keeps all.
func FilterItems(query string, items []model.Item) []model.Item {
	q := normalize(query)
	if q == "" {
		return items
	}
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(normalize(it.Name), q) {
			out = append(out, it)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(s)
}
