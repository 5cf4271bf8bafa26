package types_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/domain/types"
)

func TestWithinScale(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want bool
	}{
		{"zero", decimal.Zero, true},
		{"cents", decimal.RequireFromString("60.10"), true},
		{"upper bound", decimal.New(1, types.MaxExponent), true},
		{"lower bound", decimal.New(1, -types.MaxExponent), true},
		{"above upper bound", decimal.New(1, types.MaxExponent+1), false},
		{"below lower bound", decimal.New(1, -types.MaxExponent-1), false},
		{"huge exponent", decimal.New(1, 1_000_000_000), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.WithinScale(tt.in); got != tt.want {
				t.Fatalf("WithinScale(exp %d) = %v, want %v", tt.in.Exponent(), got, tt.want)
			}
		})
	}
}
