package units

import "math"

// Planck scales derived from C, G, and Hbar. Natural units express a
// quantity as a multiple of the Planck scale for its dimension.
var (
	PlanckMass   = math.Sqrt(Hbar * C / G)
	PlanckLength = math.Sqrt(Hbar * G / (C * C * C))
	PlanckTime   = math.Sqrt(Hbar * G / (C * C * C * C * C))
)

// ToNatural converts an SI quantity to natural (Planck) units.
// Only mass, length, time, and dimensionless quantities convert; anything
// else is a dimension error.
func ToNatural(q Quantity) (float64, error) {
	switch q.Dim {
	case MassDim:
		return q.Value / PlanckMass, nil
	case LengthDim:
		return q.Value / PlanckLength, nil
	case TimeDim:
		return q.Value / PlanckTime, nil
	case Dimensionless:
		return q.Value, nil
	}
	return 0, &DimensionError{Op: "to-natural", Left: q.Dim, Right: Dimensionless}
}

// FromNatural converts a natural-unit value back to an SI quantity of the
// given dimension.
func FromNatural(v float64, dim Dimension) (Quantity, error) {
	switch dim {
	case MassDim:
		return Kilograms(v * PlanckMass), nil
	case LengthDim:
		return Meters(v * PlanckLength), nil
	case TimeDim:
		return Seconds(v * PlanckTime), nil
	case Dimensionless:
		return Scalar(v), nil
	}
	return Quantity{}, &DimensionError{Op: "from-natural", Left: dim, Right: Dimensionless}
}
