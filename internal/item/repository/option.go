package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateItemOptions struct {
	Name        string
	Description string
	Quantity    int64
	Price       decimal.Decimal
	CategoryID  string
	Now         time.Time
}

// ListItemsOptions narrows the listing. An empty CategoryID lists every item.
type ListItemsOptions struct {
	CategoryID string
}

// UpdateItemOptions carries the full editable state; nothing is merged with the stored document.
type UpdateItemOptions struct {
	ID          string
	Name        string
	Description string
	Quantity    int64
	Price       decimal.Decimal
	CategoryID  string
	Now         time.Time
}
