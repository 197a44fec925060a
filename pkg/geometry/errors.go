package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidDimension is returned when a side length is not a strictly
// positive finite number, or is so small that half of it rounds to zero.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError describes which side length was rejected.
type DimensionError struct {
	Axis  string // "a", "b" or "c"
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: side %s = %v, must be positive and finite", ErrInvalidDimension, e.Axis, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidDimension.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}
