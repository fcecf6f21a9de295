package kernel

import (
	"fmt"
	"math"

	"kitchenpos/internal/pkg/errs"
)

var (
	// ErrPriceIsNotConstructed indicates that a Price was not created through
	// NewPrice or ZeroPrice. It is returned when validating a zero-value Price.
	ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("Price must be created via NewPrice or ZeroPrice")

	// ErrPriceOverflow indicates that a price computation exceeded the range
	// of the minor-unit representation.
	ErrPriceOverflow = errs.NewValueIsInvalidError("price arithmetic overflows the minor-unit range")
)

// Price is a non-negative monetary amount expressed in integer minor units
// (e.g. cents, won). It is an immutable value object with exact addition,
// multiplication by a quantity, and comparison.
//
// The zero value of the struct is invalid; a valid zero amount is created
// with ZeroPrice. This keeps accidentally uninitialized prices from passing
// as free items.
//
// Example:
//
//	price, err := kernel.NewPrice(1000)
//	if err != nil {
//	    // handle invalid amount
//	}
//	total, _ := price.MultiplyBy(3)
type Price struct {
	amount int64

	isSet bool
}

// NewPrice creates a Price from an amount of minor units.
// Negative amounts are rejected.
func NewPrice(minorUnits int64) (Price, error) {
	if minorUnits < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("price", minorUnits, 0, int64(math.MaxInt64))
	}
	return Price{amount: minorUnits, isSet: true}, nil
}

// ZeroPrice returns a valid Price of zero minor units.
// It is the identity element for Add and the sum of an empty price sequence.
func ZeroPrice() Price {
	return Price{amount: 0, isSet: true}
}

// Amount returns the amount in minor units.
func (p Price) Amount() int64 {
	return p.amount
}

// Add returns the exact sum of two prices.
// Both operands must be constructed; overflow is reported, never wrapped.
func (p Price) Add(other Price) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if err := other.Validate(); err != nil {
		return Price{}, err
	}
	if p.amount > math.MaxInt64-other.amount {
		return Price{}, ErrPriceOverflow
	}
	return Price{amount: p.amount + other.amount, isSet: true}, nil
}

// MultiplyBy returns the price multiplied by a non-negative quantity.
func (p Price) MultiplyBy(quantity int64) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	if quantity < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, int64(math.MaxInt64))
	}
	if quantity != 0 && p.amount > math.MaxInt64/quantity {
		return Price{}, ErrPriceOverflow
	}
	return Price{amount: p.amount * quantity, isSet: true}, nil
}

// IsLessThan reports whether p is strictly smaller than other.
func (p Price) IsLessThan(other Price) bool {
	return p.amount < other.amount
}

// IsGreaterOrEqual reports whether p is greater than or equal to other.
func (p Price) IsGreaterOrEqual(other Price) bool {
	return p.amount >= other.amount
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// String returns the amount in minor units as a decimal string.
func (p Price) String() string {
	return fmt.Sprintf("%d", p.amount)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	if !p.isSet {
		return ErrPriceIsNotConstructed
	}
	return nil
}
