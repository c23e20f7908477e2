// Package pricing computes the derived sale price of a lens. The computation
// is an explicit call made by the service layer whenever base price or discount
// changes, not a hidden persistence hook.
package pricing

import (
	"fmt"
	"math"

	"github.com/dcastano/optica-inventory/internal/apperr"
)

// FinalPrice returns basePrice reduced by discountPercent, rounded half-up to
// 2 decimal places. Bounds are rejected before any computation happens.
func FinalPrice(basePrice, discountPercent float64) (float64, error) {
	if basePrice < 0 {
		return 0, fmt.Errorf("%w: base price must be non-negative", apperr.ErrValidation)
	}
	if discountPercent < 0 || discountPercent > 100 {
		return 0, fmt.Errorf("%w: discount percent must be between 0 and 100", apperr.ErrValidation)
	}
	return Round2(basePrice * (1 - discountPercent/100)), nil
}

// Round2 rounds to 2 decimals, half away from zero, for currency display
// consistency.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
