package safeint

// Add returns x + y, or Invalid on overflow.
func Add(x, y SafeInt) SafeInt {
	return Map2Checked(checkedAdd, x, y)
}

// Sub returns x - y, or Invalid on overflow.
func Sub(x, y SafeInt) SafeInt {
	return Map2Checked(checkedSub, x, y)
}

// Mul returns x * y, or Invalid on overflow.
func Mul(x, y SafeInt) SafeInt {
	return Map2Checked(checkedMul, x, y)
}

// Div returns x divided by y rounded toward negative infinity, so -7 / 2 is -4,
// not the truncated -3 of Go's / operator. A zero divisor yields Invalid, as
// does MinInt / -1.
func Div(x, y SafeInt) SafeInt {
	return andThen2(func(a, b int) SafeInt {
		if b == 0 {
			return Invalid()
		}

		return fromChecked(checkedFloorDiv(a, b))
	}, x, y)
}

// Mod returns the remainder of the flooring division Div performs. The result
// has the sign of y (-7 mod 2 is 1) and x == y*Div(x, y) + Mod(x, y) holds for
// every valid pair. A zero divisor yields Invalid.
func Mod(x, y SafeInt) SafeInt {
	return andThen2(func(a, b int) SafeInt {
		if b == 0 {
			return Invalid()
		}

		return fromChecked(checkedFloorMod(a, b))
	}, x, y)
}

// Pow returns base raised to exp. A negative exponent or an overflowing result
// yields Invalid. Any base to the power 0 is 1.
func Pow(base, exp SafeInt) SafeInt {
	return andThen2(func(b, e int) SafeInt {
		if e < 0 {
			return Invalid()
		}

		return fromChecked(checkedPow(b, e))
	}, base, exp)
}

// Negate returns -si. Negating MinInt yields Invalid.
func Negate(si SafeInt) SafeInt {
	return MapChecked(checkedNegate, si)
}

// Abs returns the absolute value of si. The absolute value of MinInt yields
// Invalid.
func Abs(si SafeInt) SafeInt {
	return MapChecked(func(i int) (int, bool) {
		if i < 0 {
			return checkedNegate(i)
		}

		return i, true
	}, si)
}

// Add is the chaining form of the package-level Add.
func (si SafeInt) Add(y SafeInt) SafeInt { return Add(si, y) }

// Sub is the chaining form of the package-level Sub.
func (si SafeInt) Sub(y SafeInt) SafeInt { return Sub(si, y) }

// Mul is the chaining form of the package-level Mul.
func (si SafeInt) Mul(y SafeInt) SafeInt { return Mul(si, y) }

// Div is the chaining form of the package-level Div.
func (si SafeInt) Div(y SafeInt) SafeInt { return Div(si, y) }

// Mod is the chaining form of the package-level Mod.
func (si SafeInt) Mod(y SafeInt) SafeInt { return Mod(si, y) }

// Pow is the chaining form of the package-level Pow.
func (si SafeInt) Pow(exp SafeInt) SafeInt { return Pow(si, exp) }

// Negate is the chaining form of the package-level Negate.
func (si SafeInt) Negate() SafeInt { return Negate(si) }

// Abs is the chaining form of the package-level Abs.
func (si SafeInt) Abs() SafeInt { return Abs(si) }
