package frame

import (
	"github.com/lmarques/relmet/internal/metric"
)

// Body is a gravitating mass with a characteristic radius.
type Body struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // m
}

func (b Body) Validate() error {
	if _, err := metric.SchwarzschildRadius(b.Mass); err != nil {
		return err
	}
	if b.Radius <= 0 {
		return metric.ErrNonPositiveRadius
	}
	return nil
}

// Rs returns the body's Schwarzschild radius.
func (b Body) Rs() (float64, error) {
	return metric.SchwarzschildRadius(b.Mass)
}

// Observer is a reference frame at radial coordinate R moving with speed V.
type Observer struct {
	R float64 // m, distance from body center
	V float64 // m/s, proper speed
}

// Result is the dilation state of one body/observer pair. Computed on
// demand, immutable, never persisted.
type Result struct {
	TauGrav        float64
	TauKin         float64
	Tau            float64
	ApparentFactor float64 // 1/tau, rate magnification seen from afar
}

// Dilation evaluates the full dilation of obs around body.
func Dilation(body Body, obs Observer) (Result, error) {
	if err := body.Validate(); err != nil {
		return Result{}, err
	}
	grav, err := metric.GravitationalDilation(body.Mass, obs.R)
	if err != nil {
		return Result{}, err
	}
	kin, err := metric.KinematicDilation(obs.V)
	if err != nil {
		return Result{}, err
	}
	tau := grav * kin
	return Result{
		TauGrav:        grav,
		TauKin:         kin,
		Tau:            tau,
		ApparentFactor: 1 / tau,
	}, nil
}

// Comparison relates two frames: how many seconds pass for A per second of
// B's proper time.
type Comparison struct {
	A        Result
	B        Result
	Relative float64 // tauA / tauB
}

// Compare evaluates both frames and their relative dilation. The classic
// scenario pairs an observer skimming a black-hole horizon against one on
// the Earth's surface.
func Compare(bodyA Body, obsA Observer, bodyB Body, obsB Observer) (Comparison, error) {
	ra, err := Dilation(bodyA, obsA)
	if err != nil {
		return Comparison{}, err
	}
	rb, err := Dilation(bodyB, obsB)
	if err != nil {
		return Comparison{}, err
	}
	return Comparison{A: ra, B: rb, Relative: ra.Tau / rb.Tau}, nil
}
