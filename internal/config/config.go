package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lmarques/relmet/internal/frame"
	"github.com/lmarques/relmet/internal/sweep"
)

const (
	DefaultBody    = "stellar-bh"
	DefaultStart   = 1.1
	DefaultStop    = 100.0
	DefaultPoints  = 200
	DefaultRFactor = 1.1
)

type Config struct {
	Body     BodyConfig     `yaml:"body"`
	Observer ObserverConfig `yaml:"observer"`
	Sweep    SweepConfig    `yaml:"sweep"`
}

// BodyConfig selects a catalog body by name, or defines one inline.
type BodyConfig struct {
	Name   string  `yaml:"name"`
	Mass   float64 `yaml:"mass"`   // kg, used when Name is empty
	Radius float64 `yaml:"radius"` // m, used when Name is empty
}

type ObserverConfig struct {
	R        float64 `yaml:"r"`        // m, absolute radial coordinate
	RFactor  float64 `yaml:"r_factor"` // in Rs units; used when R is 0
	Velocity float64 `yaml:"velocity"` // m/s
}

type SweepConfig struct {
	Kind   string  `yaml:"kind"`
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
	Log    bool    `yaml:"log"`
}

func DefaultConfig() *Config {
	return &Config{
		Body: BodyConfig{Name: DefaultBody},
		Observer: ObserverConfig{
			RFactor: DefaultRFactor,
		},
		Sweep: SweepConfig{
			Kind:   string(sweep.Radius),
			Start:  DefaultStart,
			Stop:   DefaultStop,
			Points: DefaultPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveBody returns the configured body, from the catalog or inline.
func (c *Config) ResolveBody() (frame.Body, error) {
	if c.Body.Name != "" {
		body, ok := frame.Lookup(c.Body.Name)
		if !ok {
			return frame.Body{}, fmt.Errorf("unknown body: %s (available: %v)", c.Body.Name, frame.Names())
		}
		return body, nil
	}
	body := frame.Body{Name: "custom", Mass: c.Body.Mass, Radius: c.Body.Radius}
	if err := body.Validate(); err != nil {
		return frame.Body{}, err
	}
	return body, nil
}

// ResolveObserver returns the configured observer around the given body.
// An r_factor takes effect only when no absolute radius is set.
func (c *Config) ResolveObserver(body frame.Body) (frame.Observer, error) {
	r := c.Observer.R
	if r == 0 && c.Observer.RFactor != 0 {
		rs, err := body.Rs()
		if err != nil {
			return frame.Observer{}, err
		}
		r = c.Observer.RFactor * rs
	}
	if r == 0 {
		r = body.Radius
	}
	return frame.Observer{R: r, V: c.Observer.Velocity}, nil
}

// ResolveSweep converts to the sweep package's config. The observer's
// r_factor positions velocity sweeps.
func (c *Config) ResolveSweep() sweep.Config {
	return sweep.Config{
		Kind:    sweep.Kind(c.Sweep.Kind),
		Start:   c.Sweep.Start,
		Stop:    c.Sweep.Stop,
		Points:  c.Sweep.Points,
		Log:     c.Sweep.Log,
		RFactor: c.Observer.RFactor,
	}
}
