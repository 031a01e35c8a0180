package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/lmarques/relmet/internal/frame"
	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

// Kind selects the swept parameter.
type Kind string

const (
	// Radius sweeps the observer's radial coordinate, in units of Rs.
	Radius Kind = "radius"
	// Velocity sweeps the observer's proper speed, in units of c.
	Velocity Kind = "velocity"
	// Curvature sweeps the quantum-analogy curvature factor.
	Curvature Kind = "curvature"
)

// Config describes one sweep.
type Config struct {
	Kind   Kind
	Start  float64
	Stop   float64
	Points int
	Log    bool // logarithmic spacing

	// RFactor fixes the observer's radial coordinate, in Rs units, for
	// velocity sweeps. Zero means the body's surface. Black-hole catalog
	// entries have their characteristic radius at the horizon, so velocity
	// sweeps over them need an explicit RFactor > 1.
	RFactor float64
}

func (c Config) validate() error {
	if c.Points < 2 {
		return fmt.Errorf("sweep: need at least 2 points, got %d", c.Points)
	}
	if c.Stop <= c.Start {
		return fmt.Errorf("sweep: stop must exceed start (%g <= %g)", c.Stop, c.Start)
	}
	if c.Log && c.Start <= 0 {
		return fmt.Errorf("sweep: log spacing requires positive start, got %g", c.Start)
	}
	if c.RFactor < 0 {
		return fmt.Errorf("sweep: r factor must not be negative, got %g", c.RFactor)
	}
	switch c.Kind {
	case Radius, Velocity, Curvature:
		return nil
	}
	return fmt.Errorf("sweep: unknown kind %q", c.Kind)
}

// Sample is one evaluated point of a sweep.
type Sample struct {
	X        float64 // swept parameter value
	TauGrav  float64
	TauKin   float64
	Tau      float64
	Apparent float64 // apparent velocity of a 1 m/s proper motion, = 1/tau
}

// Result collects the samples of one sweep. Truncated holds the first
// domain error if sampling hit the edge of the physical domain; samples up
// to that point are kept.
type Result struct {
	Body      frame.Body
	Config    Config
	Samples   []Sample
	Metrics   map[string]float64
	Truncated error
}

// Run evaluates the sweep for the given body. Each point is an independent
// pure computation; a domain failure ends sampling at that point and is
// recorded, never clamped.
func Run(body frame.Body, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := body.Validate(); err != nil {
		return nil, err
	}
	rs, err := body.Rs()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Body:    body,
		Config:  cfg,
		Samples: make([]Sample, 0, cfg.Points),
		Metrics: make(map[string]float64),
	}

	observers := []Metric{NewMinTau(), NewMaxApparent()}
	if cfg.Kind == Radius {
		observers = append(observers, NewHorizonProximity(rs))
	}
	for _, m := range observers {
		m.Reset()
	}

	for i := 0; i < cfg.Points; i++ {
		x := cfg.at(i)

		sample, err := evaluate(body, rs, cfg, x)
		if err != nil {
			if errors.Is(err, metric.ErrDomain) {
				result.Truncated = err
				break
			}
			return nil, err
		}

		for _, m := range observers {
			m.Observe(sample)
		}
		result.Samples = append(result.Samples, sample)
	}

	for _, m := range observers {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// at returns the i-th swept value with linear or logarithmic spacing.
func (c Config) at(i int) float64 {
	frac := float64(i) / float64(c.Points-1)
	if c.Log {
		return c.Start * math.Pow(c.Stop/c.Start, frac)
	}
	return c.Start + frac*(c.Stop-c.Start)
}

func evaluate(body frame.Body, rs float64, cfg Config, x float64) (Sample, error) {
	var tauGrav, tauKin float64
	var err error

	switch cfg.Kind {
	case Radius:
		tauGrav, err = metric.GravitationalDilation(body.Mass, x*rs)
		tauKin = 1
	case Velocity:
		r := body.Radius
		if cfg.RFactor > 0 {
			r = cfg.RFactor * rs
		}
		tauGrav, err = metric.GravitationalDilation(body.Mass, r)
		if err == nil {
			tauKin, err = metric.KinematicDilation(x * units.C)
		}
	case Curvature:
		var a frame.Analogy
		a, err = frame.QuantumAnalogy(x)
		tauGrav = a.TauQuantum
		tauKin = 1
	}
	if err != nil {
		return Sample{}, err
	}

	tau := tauGrav * tauKin
	apparent, err := metric.ApparentVelocity(1, tau)
	if err != nil {
		return Sample{}, err
	}
	return Sample{X: x, TauGrav: tauGrav, TauKin: tauKin, Tau: tau, Apparent: apparent}, nil
}
