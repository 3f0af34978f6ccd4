package units

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tons(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBagsFor(t *testing.T) {
	cases := []struct {
		tons string
		want int64
	}{
		{"0.5", 10},
		{"1", 20},
		{"2", 40},
		{"2.5", 50},
		{"12.5", 250},
		{"0.33", 7},
		{"0", 0},
		{"-1", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BagsFor(tons(c.tons)), "tons=%s", c.tons)
	}
}

func TestBagsForMatchesCeilingOverSteps(t *testing.T) {
	for q := QuantityStep; q.LessThanOrEqual(tons("50")); q = q.Add(QuantityStep) {
		want := q.Mul(decimal.NewFromInt(BagsPerTon)).Ceil().IntPart()
		assert.Equal(t, want, BagsFor(q))
	}
}

func TestIsValidQuantity(t *testing.T) {
	assert.True(t, IsValidQuantity(tons("0.5")))
	assert.True(t, IsValidQuantity(tons("3")))
	assert.True(t, IsValidQuantity(tons("7.5")))
	assert.False(t, IsValidQuantity(tons("0")))
	assert.False(t, IsValidQuantity(tons("-0.5")))
	assert.False(t, IsValidQuantity(tons("0.25")))
	assert.False(t, IsValidQuantity(tons("1.3")))
}

func TestIsValidQuantityUpperBound(t *testing.T) {
	tests := []struct {
		tons string
		want bool
	}{
		{"10000", true},
		{"9999.5", true},
		{"10000.5", false},
		{"500000000000000000", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidQuantity(tons(tt.tons)), "tons=%s", tt.tons)
	}
	assert.Equal(t, int64(200000), BagsFor(MaxQuantity))
}

func TestLineTotalAndPricePerTon(t *testing.T) {
	assert.True(t, LineTotal(40, tons("500")).Equal(tons("20000")))
	assert.True(t, LineTotal(0, tons("500")).IsZero())
	assert.True(t, PricePerTon(tons("1250.5")).Equal(tons("25010")))
}
