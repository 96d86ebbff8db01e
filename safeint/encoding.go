package safeint

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrMalformed is returned when encoded input is not an integer literal at all.
// Well-formed numbers that are fractional or out of range decode to Invalid
// without an error.
var ErrMalformed = errors.New("malformed integer")

var nullJSON = []byte("null")

var (
	_ json.Marshaler           = SafeInt{}
	_ json.Unmarshaler         = (*SafeInt)(nil)
	_ encoding.TextMarshaler   = SafeInt{}
	_ encoding.TextUnmarshaler = (*SafeInt)(nil)
)

// MarshalJSON encodes a valid value as a JSON number and Invalid as null.
func (si SafeInt) MarshalJSON() ([]byte, error) {
	if !si.valid {
		return nullJSON, nil
	}

	return strconv.AppendInt(nil, int64(si.v), 10), nil
}

// UnmarshalJSON decodes null as Invalid and any JSON number through
// FromDecimal, so 1e3 decodes to 1000 while 1.5 decodes to Invalid.
func (si *SafeInt) UnmarshalJSON(data []byte) error {
	if string(data) == string(nullJSON) {
		*si = Invalid()
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	*si = FromDecimal(d)

	return nil
}

// MarshalText encodes a valid value as decimal digits and Invalid as empty text.
func (si SafeInt) MarshalText() ([]byte, error) {
	if !si.valid {
		return []byte{}, nil
	}

	return strconv.AppendInt(nil, int64(si.v), 10), nil
}

// UnmarshalText is the inverse of MarshalText. Digits outside the int range
// decode to Invalid; anything that is not a base-10 integer is an error.
func (si *SafeInt) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*si = Invalid()
		return nil
	}

	i, err := strconv.Atoi(string(text))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			*si = Invalid()
			return nil
		}

		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	*si = FromInt(i)

	return nil
}
