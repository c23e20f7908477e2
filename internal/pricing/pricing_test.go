package pricing_test

import (
	"errors"
	"testing"

	"github.com/dcastano/optica-inventory/internal/apperr"
	"github.com/dcastano/optica-inventory/internal/pricing"
)

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		discount float64
		want     float64
	}{
		{"no discount", 100, 0, 100},
		{"ten percent", 100, 10, 90},
		{"full discount", 100, 100, 0},
		{"zero base", 0, 50, 0},
		{"fractional base", 19.99, 15, 16.99},
		{"rounds half up", 10.05, 50, 5.03},
		{"two decimals", 33.33, 33, 22.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.FinalPrice(tt.base, tt.discount)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("FinalPrice(%v, %v) = %v, want %v", tt.base, tt.discount, got, tt.want)
			}
		})
	}
}

func TestFinalPrice_Bounds(t *testing.T) {
	if _, err := pricing.FinalPrice(-1, 0); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("negative base price: expected validation error, got %v", err)
	}
	if _, err := pricing.FinalPrice(100, -0.5); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("negative discount: expected validation error, got %v", err)
	}
	if _, err := pricing.FinalPrice(100, 100.5); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("discount above 100: expected validation error, got %v", err)
	}
}

func TestFinalPrice_MonotonicInDiscount(t *testing.T) {
	prev := 1e18
	for discount := 0.0; discount <= 100; discount += 2.5 {
		got, err := pricing.FinalPrice(123.45, discount)
		if err != nil {
			t.Fatalf("unexpected error at discount %v: %v", discount, err)
		}
		if got > prev {
			t.Fatalf("final price rose from %v to %v at discount %v", prev, got, discount)
		}
		prev = got
	}
}
