package units

// Physical constants (CODATA 2018, SI). Process-wide read-only values.
const (
	C    = 299792458.0     // speed of light, m/s
	G    = 6.67430e-11     // gravitational constant, m^3/(kg·s^2)
	Hbar = 1.054571817e-34 // reduced Planck constant, J·s
)

// Reference masses and radii.
const (
	ElectronMass   = 9.1093837015e-31  // kg
	ProtonMass     = 1.67262192e-27    // kg
	AtomicMassUnit = 1.66053906660e-27 // kg
	EarthMass      = 5.9722e24         // kg
	EarthRadius    = 6.371e6           // m
	SolarMass      = 1.989e30          // kg
	SolarRadius    = 6.957e8           // m
)
