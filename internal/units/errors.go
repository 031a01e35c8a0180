package units

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates arithmetic between incompatible dimensions.
var ErrDimensionMismatch = errors.New("units: dimension mismatch")

// DimensionError reports the operation and the two dimensions involved.
type DimensionError struct {
	Op    string
	Left  Dimension
	Right Dimension
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("units: %s: dimension mismatch (%s vs %s)", e.Op, e.Left, e.Right)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
