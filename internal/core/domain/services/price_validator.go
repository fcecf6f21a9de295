package services

import (
	"kitchenpos/internal/core/domain/model/kernel"
)

// PriceValidator is a pure domain service over Price values. It backs the
// menu pricing invariant: the sum of the constituent product prices must be
// at least the menu price.
//
// Example:
//
//	validator := services.NewPriceValidator()
//	total, err := validator.Sum(linePrices)
//	if err != nil {
//	    return err
//	}
//	ok, err := validator.IsSufficient(menuPrice, total)
type PriceValidator struct{}

// NewPriceValidator creates a new PriceValidator instance.
func NewPriceValidator() PriceValidator {
	return PriceValidator{}
}

// Sum returns the exact sum of the given prices.
// An empty sequence sums to the zero price. Every operand must be a
// constructed Price; overflow is reported, never wrapped.
func (v PriceValidator) Sum(prices []kernel.Price) (kernel.Price, error) {
	total := kernel.ZeroPrice()
	for _, p := range prices {
		sum, err := total.Add(p)
		if err != nil {
			return kernel.Price{}, err
		}
		total = sum
	}
	return total, nil
}

// IsSufficient reports whether lineTotal covers menuPrice, i.e. the menu is
// not priced above the value of its parts.
func (v PriceValidator) IsSufficient(menuPrice, lineTotal kernel.Price) (bool, error) {
	if err := menuPrice.Validate(); err != nil {
		return false, err
	}
	if err := lineTotal.Validate(); err != nil {
		return false, err
	}
	return lineTotal.IsGreaterOrEqual(menuPrice), nil
}
