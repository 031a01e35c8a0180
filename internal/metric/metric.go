package metric

import (
	"fmt"
	"math"

	"github.com/lmarques/relmet/internal/units"
)

// gravitational carries G with its full dimension (m³/(kg·s²)) so the Rs
// formula below is dimension-checked, not just numerically right.
var gravitational = units.Quantity{
	Value: units.G,
	Dim:   units.Dimension{Mass: -1, Length: 3, Time: -2},
}

// SchwarzschildRadius returns Rs = 2GM/c² in meters for a mass in kg.
func SchwarzschildRadius(mass float64) (float64, error) {
	if mass <= 0 {
		return 0, domainErr("mass", mass, ErrNonPositiveMass)
	}
	c := units.MetersPerSec(units.C)
	rs := gravitational.Mul(units.Kilograms(mass)).Scale(2).Div(c.Mul(c))
	if rs.Dim != units.LengthDim {
		return 0, fmt.Errorf("metric: Rs came out as %s, want %s", rs.Dim, units.LengthDim)
	}
	return rs.Value, nil
}

// GravitationalDilation returns tau = sqrt(1 - Rs/r) for an observer at
// radial coordinate r (m) outside a body of the given mass (kg). The
// exterior Schwarzschild solution requires r strictly greater than Rs.
func GravitationalDilation(mass, r float64) (float64, error) {
	rs, err := SchwarzschildRadius(mass)
	if err != nil {
		return 0, err
	}
	if r <= 0 {
		return 0, domainErr("r", r, ErrNonPositiveRadius)
	}
	if r <= rs {
		return 0, domainErr("r", r, ErrInsideHorizon)
	}
	return math.Sqrt(1 - rs/r), nil
}

// KinematicDilation returns tau = sqrt(1 - (v/c)²) for a speed v in m/s.
func KinematicDilation(v float64) (float64, error) {
	if math.Abs(v) >= units.C {
		return 0, domainErr("v", v, ErrSuperluminal)
	}
	beta := v / units.C
	return math.Sqrt(1 - beta*beta), nil
}

// CombinedDilation composes the gravitational and kinematic factors as a
// flat product tau_grav * tau_kin. This is a deliberate simplification, not
// the full general-relativistic composition for orbital motion.
func CombinedDilation(mass, r, v float64) (float64, error) {
	grav, err := GravitationalDilation(mass, r)
	if err != nil {
		return 0, err
	}
	kin, err := KinematicDilation(v)
	if err != nil {
		return 0, err
	}
	return grav * kin, nil
}

// ApparentVelocity returns vProper/tau, the coordinate velocity a distant
// observer attributes to a particle with proper velocity vProper under
// dilation tau. The result may exceed c; that is reported as a value, not
// an error.
func ApparentVelocity(vProper, tau float64) (float64, error) {
	if tau <= 0 || tau > 1 {
		return 0, domainErr("tau", tau, ErrDilationRange)
	}
	return vProper / tau, nil
}

// Components holds the diagonal metric components of the exterior
// Schwarzschild solution at a given radial coordinate.
type Components struct {
	Gtt float64 // -(1 - Rs/r)
	Grr float64 // 1/(1 - Rs/r)
	Rs  float64
}

// MetricComponents evaluates g_tt and g_rr for a body of the given mass at
// radial coordinate r. Same domain as GravitationalDilation.
func MetricComponents(mass, r float64) (Components, error) {
	rs, err := SchwarzschildRadius(mass)
	if err != nil {
		return Components{}, err
	}
	if r <= 0 {
		return Components{}, domainErr("r", r, ErrNonPositiveRadius)
	}
	if r <= rs {
		return Components{}, domainErr("r", r, ErrInsideHorizon)
	}
	f := 1 - rs/r
	return Components{Gtt: -f, Grr: 1 / f, Rs: rs}, nil
}
