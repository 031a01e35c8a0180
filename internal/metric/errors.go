package metric

import (
	"errors"
	"fmt"
)

// Domain errors for dilation computations.
var (
	// ErrDomain is the common ancestor of every precondition failure.
	ErrDomain = errors.New("metric: input outside physical domain")

	// ErrNonPositiveMass indicates mass <= 0.
	ErrNonPositiveMass = fmt.Errorf("%w: mass must be positive", ErrDomain)

	// ErrNonPositiveRadius indicates a radial coordinate <= 0.
	ErrNonPositiveRadius = fmt.Errorf("%w: radius must be positive", ErrDomain)

	// ErrInsideHorizon indicates r at or inside the Schwarzschild radius,
	// where the exterior metric leaves the dilation factor undefined.
	ErrInsideHorizon = fmt.Errorf("%w: radius at or inside event horizon", ErrDomain)

	// ErrSuperluminal indicates |v| >= c.
	ErrSuperluminal = fmt.Errorf("%w: speed at or above light speed", ErrDomain)

	// ErrDilationRange indicates a dilation factor outside (0, 1].
	ErrDilationRange = fmt.Errorf("%w: dilation factor outside (0, 1]", ErrDomain)

	// ErrNonPositiveFactor indicates a scaling factor <= 0.
	ErrNonPositiveFactor = fmt.Errorf("%w: factor must be positive", ErrDomain)
)

// DomainError wraps a domain failure with the operation name and the
// offending value.
type DomainError struct {
	Op      string
	Value   float64
	Wrapped error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s (%s=%g)", e.Wrapped.Error(), e.Op, e.Value)
}

func (e *DomainError) Unwrap() error {
	return e.Wrapped
}

func domainErr(op string, value float64, wrapped error) error {
	return &DomainError{Op: op, Value: value, Wrapped: wrapped}
}
