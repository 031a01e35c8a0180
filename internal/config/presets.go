package config

import "github.com/lmarques/relmet/internal/units"

var Presets = map[string]*Config{
	"close-orbit": {
		Body:     BodyConfig{Name: "stellar-bh"},
		Observer: ObserverConfig{RFactor: 1.1},
		Sweep:    SweepConfig{Kind: "radius", Start: 1.01, Stop: 10, Points: 200},
	},
	"photon-sphere": {
		Body:     BodyConfig{Name: "stellar-bh"},
		Observer: ObserverConfig{RFactor: 1.5},
		Sweep:    SweepConfig{Kind: "radius", Start: 1.4, Stop: 1.6, Points: 100},
	},
	"galactic-center": {
		Body:     BodyConfig{Name: "sgr-a-star"},
		Observer: ObserverConfig{RFactor: 2.0},
		Sweep:    SweepConfig{Kind: "radius", Start: 1.1, Stop: 1000, Points: 300, Log: true},
	},
	"neutron-surface": {
		Body:     BodyConfig{Name: "neutron-star"},
		Observer: ObserverConfig{RFactor: 2.9}, // surface sits at ~2.9 Rs
		Sweep:    SweepConfig{Kind: "radius", Start: 2.9, Stop: 100, Points: 200},
	},
	"earth-surface": {
		Body:     BodyConfig{Name: "earth"},
		Observer: ObserverConfig{R: 6.371e6},
		Sweep:    SweepConfig{Kind: "radius", Start: 7.18e8, Stop: 7.18e10, Points: 200, Log: true},
	},
	"relativistic-jet": {
		Body:     BodyConfig{Name: "stellar-bh"},
		Observer: ObserverConfig{RFactor: 5, Velocity: 0.6 * units.C},
		Sweep:    SweepConfig{Kind: "velocity", Start: 0, Stop: 0.999, Points: 200},
	},
	"quantum-scale": {
		Body:     BodyConfig{Name: "earth"},
		Observer: ObserverConfig{R: 6.371e6},
		Sweep:    SweepConfig{Kind: "curvature", Start: 1e-3, Stop: 1e8, Points: 300, Log: true},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
