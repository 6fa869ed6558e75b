package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"inventory-management/internal/item"
	"inventory-management/internal/model"
	pkgErrors "inventory-management/pkg/errors"
)

var (
	quantityPattern = regexp.MustCompile(`^[0-9]+$`)
	pricePattern    = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

	// maxPrice has 15 significant digits, the most a float64 valor holds exactly.
	maxPrice = decimal.RequireFromString("9999999999999.99")
)

// fields is an item's editable state after validation.
type fields struct {
	name        string
	description string
	quantity    int64
	price       decimal.Decimal
	categoryID  string
}

// validate parses raw form values. It never touches the store.
func (uc *implUseCase) validate(name, description, quantity, price, categoryID string) (fields, error) {
	f := fields{
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		categoryID:  strings.TrimSpace(categoryID),
	}
	if f.name == "" {
		return fields{}, pkgErrors.InvalidArgument(item.ErrNameRequired)
	}

	q, err := parseQuantity(quantity)
	if err != nil {
		return fields{}, err
	}
	f.quantity = q

	p, err := parsePrice(price)
	if err != nil {
		return fields{}, err
	}
	f.price = p

	if f.categoryID == "" {
		return fields{}, pkgErrors.InvalidArgument(item.ErrCategoryRequired)
	}
	return f, nil
}

func parseQuantity(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if !quantityPattern.MatchString(raw) {
		return 0, pkgErrors.InvalidArgument(item.ErrInvalidQuantity)
	}
	q, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, pkgErrors.InvalidArgument(item.ErrInvalidQuantity)
	}
	return q, nil
}

// parsePrice accepts plain decimal notation. More than two significant decimals,
// or an amount above maxPrice, are refused so that what is stored is exactly what was typed.
func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if !pricePattern.MatchString(raw) {
		return decimal.Zero, pkgErrors.InvalidArgument(item.ErrInvalidPrice)
	}
	p, err := decimal.NewFromString(raw)
	if err != nil || p.IsNegative() {
		return decimal.Zero, pkgErrors.InvalidArgument(item.ErrInvalidPrice)
	}
	if !p.Equal(p.Round(model.PriceDecimalPlaces)) || p.GreaterThan(maxPrice) {
		return decimal.Zero, pkgErrors.InvalidArgument(item.ErrInvalidPrice)
	}
	return p.Round(model.PriceDecimalPlaces), nil
}

func notFound() error {
	return pkgErrors.NotFound(item.ErrItemNotFound)
}
