package metric_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

var _ = Describe("SchwarzschildRadius", func() {
	It("returns roughly 2954 m for a solar mass", func() {
		rs, err := metric.SchwarzschildRadius(units.SolarMass)
		Expect(err).NotTo(HaveOccurred())
		Expect(rs).To(BeNumerically("~", 2954, 4))
	})

	It("agrees with the plain scalar formula", func() {
		rs, err := metric.SchwarzschildRadius(units.SolarMass)
		Expect(err).NotTo(HaveOccurred())
		Expect(rs).To(BeNumerically("~", 2*units.G*units.SolarMass/(units.C*units.C), 1e-9))
	})

	It("scales linearly with mass", func() {
		rs1, err := metric.SchwarzschildRadius(units.SolarMass)
		Expect(err).NotTo(HaveOccurred())
		rs10, err := metric.SchwarzschildRadius(10 * units.SolarMass)
		Expect(err).NotTo(HaveOccurred())
		Expect(rs10 / rs1).To(BeNumerically("~", 10, 1e-9))
	})

	It("is positive for any positive mass", func() {
		for _, m := range []float64{1e-30, 1.0, units.EarthMass, 1e40} {
			rs, err := metric.SchwarzschildRadius(m)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs).To(BeNumerically(">", 0))
		}
	})

	It("rejects non-positive mass", func() {
		_, err := metric.SchwarzschildRadius(0)
		Expect(err).To(MatchError(metric.ErrNonPositiveMass))
		_, err = metric.SchwarzschildRadius(-1)
		Expect(err).To(MatchError(metric.ErrDomain))
	})
})

var _ = Describe("GravitationalDilation", func() {
	rs := func(m float64) float64 {
		r, err := metric.SchwarzschildRadius(m)
		Expect(err).NotTo(HaveOccurred())
		return r
	}

	It("matches the solar-mass reference scenario", func() {
		tau, err := metric.GravitationalDilation(units.SolarMass, 10*rs(units.SolarMass))
		Expect(err).NotTo(HaveOccurred())
		Expect(tau).To(BeNumerically("~", 0.9487, 1e-4))
	})

	It("stays inside (0, 1) outside the horizon", func() {
		base := rs(units.SolarMass)
		for _, factor := range []float64{1.001, 1.1, 2, 10, 1e6} {
			tau, err := metric.GravitationalDilation(units.SolarMass, factor*base)
			Expect(err).NotTo(HaveOccurred())
			Expect(tau).To(BeNumerically(">", 0))
			Expect(tau).To(BeNumerically("<", 1))
		}
	})

	It("is strictly increasing in r", func() {
		base := rs(units.SolarMass)
		prev := 0.0
		for _, factor := range []float64{1.01, 1.1, 2, 5, 100} {
			tau, err := metric.GravitationalDilation(units.SolarMass, factor*base)
			Expect(err).NotTo(HaveOccurred())
			Expect(tau).To(BeNumerically(">", prev))
			prev = tau
		}
	})

	It("approaches zero from above near the horizon", func() {
		base := rs(units.SolarMass)
		tau, err := metric.GravitationalDilation(units.SolarMass, base*(1+1e-9))
		Expect(err).NotTo(HaveOccurred())
		Expect(tau).To(BeNumerically(">", 0))
		Expect(tau).To(BeNumerically("<", 1e-4))
	})

	It("fails at and inside the horizon", func() {
		base := rs(units.SolarMass)
		_, err := metric.GravitationalDilation(units.SolarMass, base)
		Expect(err).To(MatchError(metric.ErrInsideHorizon))
		_, err = metric.GravitationalDilation(units.SolarMass, base/2)
		Expect(err).To(MatchError(metric.ErrInsideHorizon))
	})

	It("fails for non-positive radius", func() {
		_, err := metric.GravitationalDilation(units.SolarMass, 0)
		Expect(err).To(MatchError(metric.ErrNonPositiveRadius))
		_, err = metric.GravitationalDilation(units.SolarMass, -10)
		Expect(err).To(MatchError(metric.ErrDomain))
	})
})

var _ = Describe("KinematicDilation", func() {
	It("is the 3-4-5 identity at 0.6c", func() {
		tau, err := metric.KinematicDilation(0.6 * units.C)
		Expect(err).NotTo(HaveOccurred())
		Expect(tau).To(BeNumerically("~", 0.8, 1e-12))
	})

	It("is exactly 1 at rest", func() {
		tau, err := metric.KinematicDilation(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(tau).To(Equal(1.0))
	})

	It("stays in (0, 1] below light speed regardless of sign", func() {
		for _, v := range []float64{-0.99 * units.C, -1000, 1000, 0.5 * units.C, 0.999999 * units.C} {
			tau, err := metric.KinematicDilation(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(tau).To(BeNumerically(">", 0))
			Expect(tau).To(BeNumerically("<=", 1))
		}
	})

	It("fails at and above light speed", func() {
		for _, v := range []float64{units.C, -units.C, 2 * units.C} {
			_, err := metric.KinematicDilation(v)
			Expect(err).To(MatchError(metric.ErrSuperluminal))
		}
	})
})

var _ = Describe("ApparentVelocity", func() {
	It("magnifies 1 m/s to 1e6 m/s at tau = 1e-6", func() {
		v, err := metric.ApparentVelocity(1.0, 1e-6)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 1e6, 1e-3))
	})

	It("is finite and at least the proper velocity for tau in (0, 1]", func() {
		for _, tau := range []float64{1e-9, 0.1, 0.5, 1.0} {
			v, err := metric.ApparentVelocity(42.0, tau)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(BeNumerically(">=", 42.0))
		}
	})

	It("may exceed c without error", func() {
		v, err := metric.ApparentVelocity(0.9*units.C, 0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically(">", units.C))
	})

	It("fails for tau = 0 and out-of-range tau", func() {
		_, err := metric.ApparentVelocity(1.0, 0)
		Expect(err).To(MatchError(metric.ErrDilationRange))
		_, err = metric.ApparentVelocity(1.0, 1.5)
		Expect(err).To(MatchError(metric.ErrDilationRange))
	})
})

var _ = Describe("CombinedDilation", func() {
	It("reduces to the gravitational factor at v = 0", func() {
		r := 10000.0
		grav, err := metric.GravitationalDilation(units.SolarMass, r)
		Expect(err).NotTo(HaveOccurred())
		combined, err := metric.CombinedDilation(units.SolarMass, r, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(combined).To(Equal(grav))
	})

	It("multiplies the two factors", func() {
		r := 10000.0
		grav, _ := metric.GravitationalDilation(units.SolarMass, r)
		kin, _ := metric.KinematicDilation(0.6 * units.C)
		combined, err := metric.CombinedDilation(units.SolarMass, r, 0.6*units.C)
		Expect(err).NotTo(HaveOccurred())
		Expect(combined).To(BeNumerically("~", grav*kin, 1e-12))
	})

	It("propagates both constituents' domain failures", func() {
		_, err := metric.CombinedDilation(units.SolarMass, 100, 0)
		Expect(err).To(MatchError(metric.ErrInsideHorizon))
		_, err = metric.CombinedDilation(units.SolarMass, 10000, units.C)
		Expect(err).To(MatchError(metric.ErrSuperluminal))
	})
})

var _ = Describe("MetricComponents", func() {
	It("approaches the Minkowski diagonal far from the source", func() {
		comp, err := metric.MetricComponents(units.EarthMass, 1e12)
		Expect(err).NotTo(HaveOccurred())
		Expect(comp.Gtt).To(BeNumerically("~", -1, 1e-9))
		Expect(comp.Grr).To(BeNumerically("~", 1, 1e-9))
	})

	It("keeps g_tt·g_rr = -1 everywhere outside the horizon", func() {
		rs, _ := metric.SchwarzschildRadius(units.SolarMass)
		for _, factor := range []float64{1.5, 3, 10} {
			comp, err := metric.MetricComponents(units.SolarMass, factor*rs)
			Expect(err).NotTo(HaveOccurred())
			Expect(comp.Gtt * comp.Grr).To(BeNumerically("~", -1, 1e-12))
		}
	})
})

var _ = Describe("Bogoliubov", func() {
	It("preserves alpha² + beta² = 1", func() {
		for _, tau := range []float64{1e-6, 0.25, 0.5, 0.9487, 1.0} {
			b, err := metric.Bogoliubov(tau)
			Expect(err).NotTo(HaveOccurred())
			Expect(b.Alpha*b.Alpha + b.Beta*b.Beta).To(BeNumerically("~", 1, 1e-12))
		}
	})

	It("sees an empty vacuum at tau = 1", func() {
		b, err := metric.Bogoliubov(1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Thermal).To(BeZero())
	})

	It("rejects tau outside (0, 1]", func() {
		_, err := metric.Bogoliubov(0)
		Expect(err).To(MatchError(metric.ErrDilationRange))
		_, err = metric.Bogoliubov(1.1)
		Expect(err).To(MatchError(metric.ErrDilationRange))
	})
})

var _ = Describe("ModifiedUncertainty", func() {
	It("recovers hbar at tau = 1 and scales as 1/tau", func() {
		h1, err := metric.ModifiedUncertainty(1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(h1).To(Equal(units.Hbar))

		h, err := metric.ModifiedUncertainty(1e-3)
		Expect(err).NotTo(HaveOccurred())
		Expect(h / h1).To(BeNumerically("~", 1e3, 1e-6))
	})
})
