// Package predict evaluates closed-form experimental predictions of the
// dilation model: an atom-interferometry phase shift, gravitational
// decoherence of entangled pairs, and a cosmological vacuum-energy
// correction. Each report states plainly whether the predicted effect is
// within reach of measurement; most are not.
package predict

import (
	"fmt"
	"math"

	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

// Domain errors, all satisfying errors.Is(err, metric.ErrDomain).
var (
	ErrNonPositiveHeight     = fmt.Errorf("%w: height must be positive", metric.ErrDomain)
	ErrNonPositiveSeparation = fmt.Errorf("%w: separation must be positive", metric.ErrDomain)
	ErrNegativeRedshift      = fmt.Errorf("%w: redshift must not be negative", metric.ErrDomain)
)

const (
	// StandardGravity is the surface acceleration used by the
	// interferometry prediction, m/s².
	StandardGravity = 9.81

	// atomicScale converts a tower height to the atomic-scale length the
	// coupling parameter is evaluated at.
	atomicScale = 1e-10

	// fringePrecisionLimit is the best current interferometric phase
	// precision, in fringes.
	fringePrecisionLimit = 1e-10

	universeAge    = 13.8e9 * 365 * 24 * 3600 // s
	humanTimescale = 100 * 365 * 24 * 3600    // s, one century

	// Planck 2018 cosmological parameters.
	hubbleKmSMpc    = 67.4
	omegaLambda     = 0.685
	criticalDensity = 8.62e-27 // kg/m³
	planckDensity   = 5.16e96  // kg/m³
	metersPerMpc    = 3.086e22
)

// hubbleSI is H0 in 1/s.
const hubbleSI = hubbleKmSMpc * 1000 / metersPerMpc

// Interferometry is the predicted phase shift for cold atoms dropped
// through a tower of the given height.
type Interferometry struct {
	ClassicalShift    float64 // rad, m·g·h/hbar
	Correction        float64 // rad
	TotalShift        float64 // rad
	RelativeDeviation float64 // Correction / ClassicalShift
	RequiredPrecision float64 // fringes
	TechnologyGap     float64 // how much better than today's best
	Testable          bool
}

// AtomInterferometry predicts the gravitational-quantum phase shift for an
// atom of the given mass (in amu) falling a height h (m). The correction
// couples through (l_planck / (h·1e-10))², so it is far below the classical
// Einstein shift at any laboratory height.
func AtomInterferometry(height, atomMassAMU float64) (Interferometry, error) {
	if height <= 0 {
		return Interferometry{}, &metric.DomainError{Op: "height", Value: height, Wrapped: ErrNonPositiveHeight}
	}
	if atomMassAMU <= 0 {
		return Interferometry{}, &metric.DomainError{Op: "atom-mass", Value: atomMassAMU, Wrapped: metric.ErrNonPositiveMass}
	}

	massKg := atomMassAMU * units.AtomicMassUnit
	classical := massKg * StandardGravity * height / units.Hbar

	coupling := units.PlanckLength / (height * atomicScale)
	alpha := coupling * coupling
	correction := classical * alpha

	required := correction / (2 * math.Pi)
	return Interferometry{
		ClassicalShift:    classical,
		Correction:        correction,
		TotalShift:        classical + correction,
		RelativeDeviation: alpha,
		RequiredPrecision: required,
		TechnologyGap:     fringePrecisionLimit / required,
		Testable:          required > fringePrecisionLimit,
	}, nil
}

// Decoherence is the predicted gravitational decoherence of an entangled
// pair held at a fixed separation.
type Decoherence struct {
	ClassicalRate      float64 // 1/s, G·m/(c³·d²)
	CorrectionRate     float64 // 1/s
	TotalRate          float64 // 1/s
	RelativeCorrection float64
	Time               float64 // s, 1/TotalRate
	VsUniverseAge      float64
	VsHumanScale       float64
	Detectable         bool // within one century
}

// EntanglementDecoherence predicts how long an entangled pair of the given
// mass (kg) survives at separation d (m). The correction carries a
// (l_planck/d)² non-locality factor and a (m/1e-15)^(1/3) granularity term.
func EntanglementDecoherence(separation, mass float64) (Decoherence, error) {
	if separation <= 0 {
		return Decoherence{}, &metric.DomainError{Op: "separation", Value: separation, Wrapped: ErrNonPositiveSeparation}
	}
	if mass <= 0 {
		return Decoherence{}, &metric.DomainError{Op: "mass", Value: mass, Wrapped: metric.ErrNonPositiveMass}
	}

	c3 := units.C * units.C * units.C
	classical := units.G * mass / (c3 * separation * separation)

	nonlocal := units.PlanckLength / separation
	correction := classical * nonlocal * nonlocal * math.Cbrt(mass/1e-15)

	total := classical + correction
	tau := 1 / total
	return Decoherence{
		ClassicalRate:      classical,
		CorrectionRate:     correction,
		TotalRate:          total,
		RelativeCorrection: correction / classical,
		Time:               tau,
		VsUniverseAge:      tau / universeAge,
		VsHumanScale:       tau / humanTimescale,
		Detectable:         tau < humanTimescale,
	}, nil
}

// Cosmology is the predicted vacuum-energy correction at a given redshift.
type Cosmology struct {
	ObservedVacuumDensity float64 // kg/m³
	Correction            float64 // kg/m³
	RelativeCorrection    float64
	HubbleCorrection      float64 // ΔH/H0
	Observable            bool
}

// CosmologicalRedshift predicts the vacuum-energy density correction at
// redshift z. The renormalization parameter (H0·l_planck/c)²·(1+z) is the
// usual ~1e-122 vacuum-catastrophe ratio, scaled with redshift.
func CosmologicalRedshift(z float64) (Cosmology, error) {
	if z < 0 {
		return Cosmology{}, &metric.DomainError{Op: "redshift", Value: z, Wrapped: ErrNegativeRedshift}
	}

	observed := omegaLambda * criticalDensity

	eta := hubbleSI * units.PlanckLength / units.C
	correction := planckDensity * eta * eta * (1 + z)

	hubbleCorr := math.Sqrt(8*math.Pi*units.G*correction/3) / hubbleSI
	return Cosmology{
		ObservedVacuumDensity: observed,
		Correction:            correction,
		RelativeCorrection:    correction / observed,
		HubbleCorrection:      hubbleCorr,
		Observable:            hubbleCorr > 1e-8,
	}, nil
}
