package safeint

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	minIntDecimal = decimal.NewFromInt(math.MinInt)
	maxIntDecimal = decimal.NewFromInt(math.MaxInt)
)

// FromDecimal converts d to a SafeInt. The result is Invalid when d has a
// fractional part or lies outside the int range.
//
// Example:
//
//	safeint.FromDecimal(decimal.RequireFromString("12.00")) // 12
//	safeint.FromDecimal(decimal.RequireFromString("12.50")) // Invalid
func FromDecimal(d decimal.Decimal) SafeInt {
	if !d.IsInteger() {
		return Invalid()
	}

	if d.LessThan(minIntDecimal) || d.GreaterThan(maxIntDecimal) {
		return Invalid()
	}

	return FromInt64(d.IntPart())
}

// ToDecimal returns si as a decimal and true, or decimal.Zero and false when
// si is Invalid.
func ToDecimal(si SafeInt) (decimal.Decimal, bool) {
	if !si.valid {
		return decimal.Zero, false
	}

	return decimal.NewFromInt(int64(si.v)), true
}
