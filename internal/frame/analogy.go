package frame

import (
	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

// NuclearScale is the length scale the quantum analogy evaluates at.
const NuclearScale = 1e-15 // m

// Analogy applies the macroscopic dilation formula at nuclear scale under a
// hypothetical effective mass, and compares against the dilation on the
// Earth's surface.
type Analogy struct {
	CurvatureFactor float64
	EffectiveMass   float64 // kg
	EffectiveRs     float64 // m
	TauQuantum      float64
	TauMacro        float64
	Relative        float64 // tauMacro / tauQuantum

	// The same scales in natural (Planck) units.
	MassNatural  float64 // effective mass in Planck masses
	ScaleNatural float64 // nuclear scale in Planck lengths
}

// QuantumAnalogy computes the analogy for a curvature factor f > 0. The
// factor sets how deep into the hypothetical gravitational well the nuclear
// scale sits: the effective horizon is placed at r·f/(1+f), so tau_quantum
// tends to 1 as f tends to 0 and to 0 as f grows without bound.
func QuantumAnalogy(curvatureFactor float64) (Analogy, error) {
	if curvatureFactor <= 0 {
		return Analogy{}, &metric.DomainError{Op: "curvature-factor", Value: curvatureFactor, Wrapped: metric.ErrNonPositiveFactor}
	}
	rs := NuclearScale * curvatureFactor / (1 + curvatureFactor)
	effMass := rs * units.C * units.C / (2 * units.G)

	tauQuantum, err := metric.GravitationalDilation(effMass, NuclearScale)
	if err != nil {
		return Analogy{}, err
	}
	tauMacro, err := metric.GravitationalDilation(units.EarthMass, units.EarthRadius)
	if err != nil {
		return Analogy{}, err
	}

	massNat, err := units.ToNatural(units.Kilograms(effMass))
	if err != nil {
		return Analogy{}, err
	}
	scaleNat, err := units.ToNatural(units.Meters(NuclearScale))
	if err != nil {
		return Analogy{}, err
	}

	return Analogy{
		CurvatureFactor: curvatureFactor,
		EffectiveMass:   effMass,
		EffectiveRs:     rs,
		TauQuantum:      tauQuantum,
		TauMacro:        tauMacro,
		Relative:        tauMacro / tauQuantum,
		MassNatural:     massNat,
		ScaleNatural:    scaleNat,
	}, nil
}
