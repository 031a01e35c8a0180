// Package limits checks that the dilation formulas recover their classical
// limits: flat spacetime far from a source, standard kinematics at low
// speed, and unit normalization of the Bogoliubov pair.
package limits

import (
	"math"

	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

// Thresholds below which a regime counts as recovered.
const (
	WeakFieldThreshold       = 1e-6 // Rs/r
	NonRelativisticThreshold = 0.1  // v/c
)

// FlatSpaceReport describes how far the metric at (mass, r) deviates from
// Minkowski space.
type FlatSpaceReport struct {
	CurvatureParam float64 // Rs/r
	Gtt            float64
	Grr            float64
	Recovered      bool
}

// FlatSpace evaluates the weak-field limit. In the recovered regime g_tt
// tends to -1 and g_rr to +1.
func FlatSpace(mass, r float64) (FlatSpaceReport, error) {
	comp, err := metric.MetricComponents(mass, r)
	if err != nil {
		return FlatSpaceReport{}, err
	}
	param := comp.Rs / r
	return FlatSpaceReport{
		CurvatureParam: param,
		Gtt:            comp.Gtt,
		Grr:            comp.Grr,
		Recovered:      param < WeakFieldThreshold,
	}, nil
}

// NonRelativisticReport describes how far a speed sits from the classical
// regime.
type NonRelativisticReport struct {
	Beta       float64 // v/c
	Gamma      float64 // 1/tau
	Correction float64 // leading-order beta²/2
	Recovered  bool
}

// NonRelativistic evaluates the low-speed limit for v in m/s.
func NonRelativistic(v float64) (NonRelativisticReport, error) {
	tau, err := metric.KinematicDilation(v)
	if err != nil {
		return NonRelativisticReport{}, err
	}
	beta := math.Abs(v) / units.C
	return NonRelativisticReport{
		Beta:       beta,
		Gamma:      1 / tau,
		Correction: beta * beta / 2,
		Recovered:  beta < NonRelativisticThreshold,
	}, nil
}

// Unitarity returns alpha² + beta² for the Bogoliubov pair at tau and its
// deviation from 1. The simplified coefficients are normalized by
// construction, so a deviation beyond floating-point noise indicates a
// broken invariant upstream.
func Unitarity(tau float64) (sum, deviation float64, err error) {
	b, err := metric.Bogoliubov(tau)
	if err != nil {
		return 0, 0, err
	}
	sum = b.Alpha*b.Alpha + b.Beta*b.Beta
	return sum, math.Abs(sum - 1), nil
}
