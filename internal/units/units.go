package units

import "fmt"

// Dimension is a physical dimension expressed as exponents of the SI base
// dimensions used by the calculator: mass (kg), length (m), time (s).
type Dimension struct {
	Mass   int8
	Length int8
	Time   int8
}

var (
	Dimensionless = Dimension{}
	MassDim       = Dimension{Mass: 1}
	LengthDim     = Dimension{Length: 1}
	TimeDim       = Dimension{Time: 1}
	VelocityDim   = Dimension{Length: 1, Time: -1}
)

func (d Dimension) Mul(other Dimension) Dimension {
	return Dimension{
		Mass:   d.Mass + other.Mass,
		Length: d.Length + other.Length,
		Time:   d.Time + other.Time,
	}
}

func (d Dimension) Div(other Dimension) Dimension {
	return Dimension{
		Mass:   d.Mass - other.Mass,
		Length: d.Length - other.Length,
		Time:   d.Time - other.Time,
	}
}

func (d Dimension) String() string {
	if d == Dimensionless {
		return "1"
	}
	s := ""
	for _, part := range []struct {
		sym string
		exp int8
	}{{"kg", d.Mass}, {"m", d.Length}, {"s", d.Time}} {
		if part.exp == 0 {
			continue
		}
		if s != "" {
			s += "·"
		}
		if part.exp == 1 {
			s += part.sym
		} else {
			s += fmt.Sprintf("%s^%d", part.sym, part.exp)
		}
	}
	return s
}

// Quantity is a numeric value tagged with a dimension. Arithmetic between
// incompatible dimensions fails fast instead of producing a wrong number.
type Quantity struct {
	Value float64
	Dim   Dimension
}

func Kilograms(v float64) Quantity    { return Quantity{Value: v, Dim: MassDim} }
func Meters(v float64) Quantity       { return Quantity{Value: v, Dim: LengthDim} }
func Seconds(v float64) Quantity      { return Quantity{Value: v, Dim: TimeDim} }
func MetersPerSec(v float64) Quantity { return Quantity{Value: v, Dim: VelocityDim} }
func Scalar(v float64) Quantity       { return Quantity{Value: v} }

func (q Quantity) Add(other Quantity) (Quantity, error) {
	if q.Dim != other.Dim {
		return Quantity{}, &DimensionError{Op: "add", Left: q.Dim, Right: other.Dim}
	}
	return Quantity{Value: q.Value + other.Value, Dim: q.Dim}, nil
}

func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if q.Dim != other.Dim {
		return Quantity{}, &DimensionError{Op: "sub", Left: q.Dim, Right: other.Dim}
	}
	return Quantity{Value: q.Value - other.Value, Dim: q.Dim}, nil
}

func (q Quantity) Mul(other Quantity) Quantity {
	return Quantity{Value: q.Value * other.Value, Dim: q.Dim.Mul(other.Dim)}
}

func (q Quantity) Div(other Quantity) Quantity {
	return Quantity{Value: q.Value / other.Value, Dim: q.Dim.Div(other.Dim)}
}

func (q Quantity) Scale(factor float64) Quantity {
	return Quantity{Value: q.Value * factor, Dim: q.Dim}
}

// Cmp returns -1, 0, or +1 comparing q with other of the same dimension.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if q.Dim != other.Dim {
		return 0, &DimensionError{Op: "cmp", Left: q.Dim, Right: other.Dim}
	}
	switch {
	case q.Value < other.Value:
		return -1, nil
	case q.Value > other.Value:
		return 1, nil
	}
	return 0, nil
}

func (q Quantity) String() string {
	if q.Dim == Dimensionless {
		return fmt.Sprintf("%g", q.Value)
	}
	return fmt.Sprintf("%g %s", q.Value, q.Dim)
}
