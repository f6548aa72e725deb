package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Amount(t *testing.T) {
	f := NewFormatter(DefaultLocale())

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"crores", 10_000_000_000, "₹ 1000.00 Cr"},
		{"exactly one crore", 10_000_000, "₹ 1.00 Cr"},
		{"fractional crores", 3_312_500_000, "₹ 331.25 Cr"},
		{"lakhs", 2_550_000, "₹ 25.50 L"},
		{"exactly one lakh", 100_000, "₹ 1.00 L"},
		{"small", 950, "₹ 950"},
		{"zero", 0, "₹ 0"},
		{"negative crores", -25_000_000, "₹ -2.50 Cr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Amount(tt.amount))
		})
	}
}

func TestFormatter_CustomSymbol(t *testing.T) {
	l, err := ParseLocale("en-IN", "Rs.")
	require.NoError(t, err)
	assert.Equal(t, "Rs. 5.00 Cr", NewFormatter(l).Amount(50_000_000))
}

func TestParseLocale_Invalid(t *testing.T) {
	_, err := ParseLocale("not a tag!", "")
	assert.Error(t, err)
}

func TestCrores(t *testing.T) {
	assert.Equal(t, "330.00", Crores(3_300_000_000))
	assert.Equal(t, "0.05", Crores(500_000))
	assert.Equal(t, "-1.00", Crores(-10_000_000))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "25%", Percent(25))
	assert.Equal(t, "12.5%", Percent(12.5))
	assert.Equal(t, "0%", Percent(0))
}

func TestParseDigits(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"50", 50, true},
		{"₹ 1,250 Cr", 1250, true},
		{"12.5", 125, true},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDigits(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
