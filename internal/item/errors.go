package item

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrNameRequired     = errors.New("item name is required")
	ErrInvalidQuantity  = errors.New("quantity must be a non-negative whole number")
	ErrInvalidPrice     = errors.New("price must be a non-negative amount up to 9999999999999.99 with at most two decimals")
	ErrCategoryRequired = errors.New("category is required")
)
