package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placeholders shown when a stored document lacks a value or a reference dangles.
const (
	UnnamedPlaceholder  = "Sem nome"
	CategoryPlaceholder = "Categoria"
)

// CategoryNameMaxLength is the longest category name accepted, in characters.
const CategoryNameMaxLength = 50

// PriceDecimalPlaces is the currency precision of Item.Price.
const PriceDecimalPlaces = 2

// Category groups items. ID is assigned by the store.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a stock entry. CategoryID is a weak reference: the category may no longer exist.
type Item struct {
	ID          string
	Name        string
	Description string
	Quantity    int64
	Price       decimal.Decimal
	CategoryID  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
