package safeint

import (
	"strconv"
)

// invalidString is how an invalid SafeInt renders through String.
const invalidString = "Invalid"

// SafeInt is an int that is either valid or Invalid.
//
// The zero value is Invalid. The payload of an Invalid value is always 0, so
// two SafeInt values can be compared with ==.
type SafeInt struct {
	v     int
	valid bool
}

// Invalid returns the invalid SafeInt. Use it from AndThen callbacks to
// implement custom validity rules.
func Invalid() SafeInt {
	return SafeInt{}
}

// FromInt wraps i. Every int is representable, so the result is always valid;
// invalid values only arise from operations on SafeInt.
func FromInt(i int) SafeInt {
	return SafeInt{v: i, valid: true}
}

// FromInt64 wraps i, returning Invalid when i does not fit in an int on the
// current platform.
func FromInt64(i int64) SafeInt {
	if int64(int(i)) != i {
		return Invalid()
	}

	return FromInt(int(i))
}

// Parse reads a base-10 integer with an optional sign. Malformed input and
// values outside the int range yield Invalid.
//
// Example:
//
//	safeint.Parse("42")                    // 42
//	safeint.Parse("99999999999999999999") // Invalid
func Parse(s string) SafeInt {
	i, err := strconv.Atoi(s)
	if err != nil {
		return Invalid()
	}

	return FromInt(i)
}

// Get returns the wrapped integer and true, or 0 and false when si is Invalid.
// It is the only way to leave the SafeInt domain.
func Get(si SafeInt) (int, bool) {
	return si.v, si.valid
}

// Get is the method form of the package-level Get.
func (si SafeInt) Get() (int, bool) {
	return Get(si)
}

// IsValid reports whether si wraps an integer.
func (si SafeInt) IsValid() bool {
	return si.valid
}

// String returns the decimal form of a valid value, or "Invalid".
func (si SafeInt) String() string {
	if !si.valid {
		return invalidString
	}

	return strconv.Itoa(si.v)
}
