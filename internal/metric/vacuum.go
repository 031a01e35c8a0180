package metric

import (
	"math"

	"github.com/lmarques/relmet/internal/units"
)

// BogoliubovCoefficients relate the vacuum seen by a dilated observer to
// the undilated one. In the simplified single-mode form alpha = sqrt(tau)
// and beta = sqrt(1-tau); |beta|² is the thermal particle number the
// dilated observer attributes to the other frame's vacuum.
type BogoliubovCoefficients struct {
	Alpha   float64
	Beta    float64
	Thermal float64 // |beta|²
}

// Bogoliubov computes the simplified coefficients for a dilation factor in
// (0, 1].
func Bogoliubov(tau float64) (BogoliubovCoefficients, error) {
	if tau <= 0 || tau > 1 {
		return BogoliubovCoefficients{}, domainErr("tau", tau, ErrDilationRange)
	}
	beta := math.Sqrt(1 - tau)
	return BogoliubovCoefficients{
		Alpha:   math.Sqrt(tau),
		Beta:    beta,
		Thermal: beta * beta,
	}, nil
}

// ModifiedUncertainty returns the momentum-uncertainty bound hbar/tau (J·s)
// for an observer under dilation tau: field fluctuations scale as 1/tau
// across the frame boundary.
func ModifiedUncertainty(tau float64) (float64, error) {
	if tau <= 0 || tau > 1 {
		return 0, domainErr("tau", tau, ErrDilationRange)
	}
	return units.Hbar / tau, nil
}
