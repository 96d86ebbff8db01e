package safeint

import "math"

// Checked primitives over the native int. Each returns ok == false when the
// mathematical result is undefined or does not fit in an int. None of them
// can panic, including MinInt / -1 and division by zero.

func checkedAdd(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}

	return c, true
}

func checkedSub(a, b int) (int, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return 0, false
	}

	return c, true
}

func checkedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, false
	}

	return c, true
}

// checkedFloorDiv rounds toward negative infinity.
func checkedFloorDiv(a, b int) (int, bool) {
	if b == 0 || (a == math.MinInt && b == -1) {
		return 0, false
	}

	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, true
}

// checkedFloorMod returns a remainder carrying the sign of b, so that
// a == b*floorDiv(a, b) + floorMod(a, b).
func checkedFloorMod(a, b int) (int, bool) {
	if b == 0 {
		return 0, false
	}

	if b == -1 {
		return 0, true
	}

	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r, true
}

// checkedPow uses exponentiation by squaring. The base is only squared while
// bits of the exponent remain, so a square that overflows always implies the
// final power overflows too.
func checkedPow(base, exp int) (int, bool) {
	if exp < 0 {
		return 0, false
	}

	result := 1

	var ok bool

	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = checkedMul(result, base); !ok {
				return 0, false
			}
		}

		exp >>= 1

		if exp > 0 {
			if base, ok = checkedMul(base, base); !ok {
				return 0, false
			}
		}
	}

	return result, true
}

func checkedNegate(a int) (int, bool) {
	if a == math.MinInt {
		return 0, false
	}

	return -a, true
}
