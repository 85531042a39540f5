package kernel

import (
	"fmt"
	"math"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places an amount is kept to.
const AmountPlaces = 2

// MaxAmount is the largest amount that fits a numeric(12,2) column.
var MaxAmount = decimal.RequireFromString("9999999999.99")

// Money is a non-negative amount in the store's single, implicit currency,
// kept in whole cents. The zero value is a valid amount of 0.
type Money struct {
	amount float64
}

// NewMoney validates that amount is finite and within [0, MaxAmount] after
// rounding half away from zero to AmountPlaces.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxAmount)
	}

	rounded := decimal.NewFromFloat(amount).Round(AmountPlaces)
	if rounded.GreaterThan(MaxAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxAmount)
	}
	return Money{amount: rounded.InexactFloat64()}, nil
}

// MustNewMoney is NewMoney for literals known to be valid.
func MustNewMoney(amount float64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() float64 {
	return m.amount
}

// Add sums in decimal, so totals stay in whole cents. A total may exceed
// MaxAmount; totals are reported, never stored.
func (m Money) Add(other Money) Money {
	return Money{amount: m.Decimal().Add(other.Decimal()).InexactFloat64()}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// Decimal converts the amount for storage in numeric columns.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(m.amount)
}

// String renders the amount with two decimals, the way the dashboard shows prices.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MoneyFromDecimal is the inverse of Decimal.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	return NewMoney(d.InexactFloat64())
}
