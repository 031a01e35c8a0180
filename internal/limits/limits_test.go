package limits

import (
	"errors"
	"math"
	"testing"

	"github.com/lmarques/relmet/internal/metric"
	"github.com/lmarques/relmet/internal/units"
)

func TestFlatSpaceRecovered(t *testing.T) {
	// Earth at its own surface: Rs/r ≈ 1.4e-9, deep in the weak field.
	report, err := FlatSpace(units.EarthMass, units.EarthRadius)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Recovered {
		t.Error("expected weak-field regime at earth surface")
	}
	if math.Abs(report.Gtt+1) > 1e-8 {
		t.Errorf("g_tt should approach -1, got %f", report.Gtt)
	}
	if math.Abs(report.Grr-1) > 1e-8 {
		t.Errorf("g_rr should approach +1, got %f", report.Grr)
	}
}

func TestFlatSpaceStrongField(t *testing.T) {
	rs, _ := metric.SchwarzschildRadius(units.SolarMass)

	report, err := FlatSpace(units.SolarMass, 2*rs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Recovered {
		t.Error("2 Rs is not a weak field")
	}
	if math.Abs(report.CurvatureParam-0.5) > 1e-12 {
		t.Errorf("expected Rs/r = 0.5, got %f", report.CurvatureParam)
	}
}

func TestFlatSpacePropagatesDomainErrors(t *testing.T) {
	rs, _ := metric.SchwarzschildRadius(units.SolarMass)
	if _, err := FlatSpace(units.SolarMass, rs/2); !errors.Is(err, metric.ErrInsideHorizon) {
		t.Errorf("expected ErrInsideHorizon, got %v", err)
	}
}

func TestNonRelativisticRecovered(t *testing.T) {
	report, err := NonRelativistic(3e5) // ~1e-3 c
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !report.Recovered {
		t.Error("1e-3 c is non-relativistic")
	}
	if math.Abs(report.Gamma-1) > 1e-5 {
		t.Errorf("gamma should be ~1, got %f", report.Gamma)
	}
	if math.Abs(report.Correction-report.Beta*report.Beta/2) > 1e-18 {
		t.Errorf("correction should be beta²/2")
	}
}

func TestNonRelativisticFastFrame(t *testing.T) {
	report, err := NonRelativistic(0.6 * units.C)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Recovered {
		t.Error("0.6c is relativistic")
	}
	if math.Abs(report.Gamma-1.25) > 1e-9 {
		t.Errorf("expected gamma 1.25 at 0.6c, got %f", report.Gamma)
	}
}

func TestNonRelativisticRejectsLightSpeed(t *testing.T) {
	if _, err := NonRelativistic(units.C); !errors.Is(err, metric.ErrSuperluminal) {
		t.Errorf("expected ErrSuperluminal, got %v", err)
	}
}

func TestUnitarityHolds(t *testing.T) {
	for _, tau := range []float64{1e-9, 0.3, 0.8, 1.0} {
		sum, dev, err := Unitarity(tau)
		if err != nil {
			t.Fatalf("unexpected error at tau=%g: %v", tau, err)
		}
		if dev > 1e-12 {
			t.Errorf("unitarity broken at tau=%g: sum=%.15f", tau, sum)
		}
	}
}
