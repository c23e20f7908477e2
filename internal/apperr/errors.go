// Package apperr defines the sentinel errors the domain engine reports.
// Storage faults are not classified here; they pass through unchanged and the
// transport maps anything unrecognized to an internal error.
package apperr

import "errors"

var (
	// ErrValidation covers bad input shape or bounds: negative price, discount
	// outside [0,100], missing required fields, duplicate names/codes.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned for unknown ids, including an unknown brand
	// referenced on lens creation.
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock is returned when a sale is attempted with zero quantity.
	ErrOutOfStock = errors.New("out of stock")
	// ErrEmptyReport is returned when a lot report is requested for a lot with
	// no records; no degenerate report is emitted.
	ErrEmptyReport = errors.New("no records for report")
)

// IsOutOfStock reports whether err is a depleted-stock rejection.
func IsOutOfStock(err error) bool {
	return errors.Is(err, ErrOutOfStock)
}
