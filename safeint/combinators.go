package safeint

// Map applies f to the wrapped value and wraps the result. f is never called
// when si is Invalid.
//
// f works on plain ints and cannot signal overflow; use MapChecked when it can.
func Map(f func(int) int, si SafeInt) SafeInt {
	if !si.valid {
		return Invalid()
	}

	return FromInt(f(si.v))
}

// MapChecked is Map for functions that report whether their result is valid.
// A false result yields Invalid.
func MapChecked(f func(int) (int, bool), si SafeInt) SafeInt {
	if !si.valid {
		return Invalid()
	}

	return fromChecked(f(si.v))
}

// Map2 applies op to both wrapped values. op is only called when x and y are
// both valid.
func Map2(op func(int, int) int, x, y SafeInt) SafeInt {
	if !x.valid || !y.valid {
		return Invalid()
	}

	return FromInt(op(x.v, y.v))
}

// Map2Checked is Map2 for operations that report whether their result is valid.
func Map2Checked(op func(int, int) (int, bool), x, y SafeInt) SafeInt {
	if !x.valid || !y.valid {
		return Invalid()
	}

	return fromChecked(op(x.v, y.v))
}

// AndThen passes the wrapped value to f and returns whatever f returns. It
// short-circuits to Invalid without calling f when si is Invalid.
//
// AndThen is where custom validity rules go:
//
//	noTwos := func(i int) safeint.SafeInt {
//		if i == 2 {
//			return safeint.Invalid()
//		}
//		return safeint.FromInt(i)
//	}
//
//	safeint.AndThen(safeint.FromInt(2), noTwos) // Invalid
func AndThen(si SafeInt, f func(int) SafeInt) SafeInt {
	if !si.valid {
		return Invalid()
	}

	return f(si.v)
}

// andThen2 binds x first and y inside that continuation.
func andThen2(f func(int, int) SafeInt, x, y SafeInt) SafeInt {
	return AndThen(x, func(a int) SafeInt {
		return AndThen(y, func(b int) SafeInt {
			return f(a, b)
		})
	})
}

func fromChecked(v int, ok bool) SafeInt {
	if !ok {
		return Invalid()
	}

	return FromInt(v)
}
