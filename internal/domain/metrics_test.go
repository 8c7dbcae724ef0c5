package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func amount(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name       string
		serviceFee decimal.NullDecimal
		wage       decimal.NullDecimal
		want       string
	}{
		{
			name:       "zero inputs yield zero",
			serviceFee: amount("0"),
			wage:       amount("0"),
			want:       "0.00",
		},
		{
			name:       "reference scenario",
			serviceFee: amount("1000"),
			wage:       amount("200"),
			want:       "-38.96",
		},
		{
			name:       "missing service fee yields zero",
			serviceFee: decimal.NullDecimal{},
			wage:       amount("200"),
			want:       "0.00",
		},
		{
			name:       "missing wage yields zero",
			serviceFee: amount("1000"),
			wage:       decimal.NullDecimal{},
			want:       "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTax(tt.serviceFee, tt.wage)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeSupplementalInsurance(t *testing.T) {
	tests := []struct {
		name      string
		insurance decimal.NullDecimal
		want      string
	}{
		{
			name:      "reference scenario",
			insurance: amount("100"),
			want:      "-37.93",
		},
		{
			name:      "exact division",
			insurance: amount("29"),
			want:      "-11.00",
		},
		{
			name:      "missing input yields zero",
			insurance: decimal.NullDecimal{},
			want:      "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSupplementalInsurance(tt.insurance)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeSupplementalInsuranceIsLinear(t *testing.T) {
	for _, s := range []string{"29", "58", "145", "290"} {
		x := decimal.RequireFromString(s)
		doubled := ComputeSupplementalInsurance(decimal.NullDecimal{Decimal: x.Mul(decimal.NewFromInt(2)), Valid: true})
		single := ComputeSupplementalInsurance(decimal.NullDecimal{Decimal: x, Valid: true})
		assert.True(t, doubled.Equal(single.Mul(decimal.NewFromInt(2))), "x=%s", s)
	}
}
