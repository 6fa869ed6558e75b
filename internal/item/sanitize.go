package item

import (
	"strings"

	"inventory-management/internal/model"
)

// SanitizeQuantity drops every character that is not an ASCII digit.
func SanitizeQuantity(input string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, input)
}

// SanitizePrice keeps digits and the decimal separator, reading ',' as '.'.
// An input with a second separator is refused and previous is returned instead.
func SanitizePrice(previous, input string) string {
	var b strings.Builder
	separators := 0
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',':
			separators++
			b.WriteRune('.')
		}
	}
	if separators > 1 {
		return previous
	}
	return b.String()
}

// CategoryName resolves an item's category name from a loaded list, falling back
// to a placeholder when the category no longer exists.
func CategoryName(categories []model.Category, categoryID string) string {
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return model.CategoryPlaceholder
}
