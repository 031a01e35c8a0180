// Package metric computes Schwarzschild-metric time dilation quantities.
//
// Every function is pure: same inputs, same outputs, no hidden state and no
// I/O. Inputs are SI scalars (kg, m, m/s); dilation factors are
// dimensionless values in (0, 1]. Physical preconditions are checked
// explicitly and violations surface as domain errors satisfying
// errors.Is(err, ErrDomain); the package never clamps or substitutes a
// sentinel value.
//
// The apparent (coordinate) velocity returned by [ApparentVelocity] may
// exceed the speed of light. That is a property of the algebra, reported as
// a value; interpreting it is the caller's problem.
package metric
