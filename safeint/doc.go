// Package safeint provides SafeInt, an integer that remembers whether it is
// still a well-defined value.
//
// A SafeInt is either valid, wrapping one native int, or Invalid. Every
// operation in this package returns a new SafeInt, and any operation that
// cannot produce a representable integer (overflow, division or modulo by
// zero, a negative exponent) yields Invalid instead of panicking or wrapping
// around silently. Invalid operands are absorbed: once a value in a
// calculation chain is Invalid, every result derived from it is Invalid too.
//
// Leave the SafeInt domain exactly once, at the boundary, with Get:
//
//	total := safeint.FromInt(price).Mul(safeint.FromInt(qty)).Div(safeint.FromInt(parts))
//	if v, ok := total.Get(); ok {
//		render(v)
//	} else {
//		renderUnavailable()
//	}
//
// Custom validity rules are written with AndThen, which receives the unwrapped
// integer and decides which SafeInt to continue with.
//
// All values are immutable and every function is pure, so SafeInt values can
// be shared between goroutines freely.
package safeint
