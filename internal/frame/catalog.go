package frame

import (
	"sort"

	"github.com/lmarques/relmet/internal/units"
)

// Catalog of reference bodies addressable by name from the CLI and config.
var Catalog = map[string]Body{
	"earth": {
		Name:   "earth",
		Mass:   units.EarthMass,
		Radius: units.EarthRadius,
	},
	"sun": {
		Name:   "sun",
		Mass:   units.SolarMass,
		Radius: units.SolarRadius,
	},
	"sirius-b": {
		Name:   "sirius-b",
		Mass:   1.018 * units.SolarMass,
		Radius: 5.8e6,
	},
	"neutron-star": {
		Name:   "neutron-star",
		Mass:   1.4 * units.SolarMass,
		Radius: 1.2e4,
	},
	// Black holes have no surface; the characteristic radius is Rs.
	"stellar-bh": {
		Name:   "stellar-bh",
		Mass:   10 * units.SolarMass,
		Radius: 2.954e4,
	},
	"sgr-a-star": {
		Name:   "sgr-a-star",
		Mass:   4.154e6 * units.SolarMass,
		Radius: 1.227e10,
	},
}

// Lookup returns the named body, or false if unknown.
func Lookup(name string) (Body, bool) {
	b, ok := Catalog[name]
	return b, ok
}

// Names lists catalog bodies in stable order.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
