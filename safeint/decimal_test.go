//go:build unit

package safeint

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     decimal.Decimal
		want      int
		wantValid bool
	}{
		{name: "integer", input: decimal.NewFromInt(25), want: 25, wantValid: true},
		{name: "trailing zeros", input: decimal.RequireFromString("12.000"), want: 12, wantValid: true},
		{name: "negative", input: decimal.RequireFromString("-4"), want: -4, wantValid: true},
		{name: "max", input: decimal.NewFromInt(math.MaxInt), want: math.MaxInt, wantValid: true},
		{name: "min", input: decimal.NewFromInt(math.MinInt), want: math.MinInt, wantValid: true},
		{name: "fraction", input: decimal.RequireFromString("12.5"), wantValid: false},
		{name: "above max", input: decimal.NewFromInt(math.MaxInt).Add(decimal.NewFromInt(1)), wantValid: false},
		{name: "below min", input: decimal.NewFromInt(math.MinInt).Sub(decimal.NewFromInt(1)), wantValid: false},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := FromDecimal(tt.input).Get()
			assert.Equal(t, tt.wantValid, ok)

			if tt.wantValid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToDecimal(t *testing.T) {
	t.Parallel()

	d, ok := ToDecimal(FromInt(-300))
	assert.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(-300)), "got %s", d)

	d, ok = ToDecimal(Invalid())
	assert.False(t, ok)
	assert.True(t, d.IsZero())
}
