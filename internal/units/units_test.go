package units

import (
	"errors"
	"math"
	"testing"
)

func TestAddSameDimension(t *testing.T) {
	a := Meters(2.0)
	b := Meters(3.0)

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Value != 5.0 {
		t.Errorf("expected 5.0, got %f", sum.Value)
	}
	if sum.Dim != LengthDim {
		t.Errorf("expected length dimension, got %v", sum.Dim)
	}
}

func TestAddIncompatibleDimensions(t *testing.T) {
	a := Meters(2.0)
	b := Kilograms(3.0)

	_, err := a.Add(b)
	if err == nil {
		t.Fatal("expected dimension error")
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSubIncompatibleDimensions(t *testing.T) {
	_, err := Seconds(1.0).Sub(Meters(1.0))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestMulCombinesDimensions(t *testing.T) {
	v := Meters(6.0).Div(Seconds(2.0))

	if v.Value != 3.0 {
		t.Errorf("expected 3.0, got %f", v.Value)
	}
	if v.Dim != VelocityDim {
		t.Errorf("expected velocity dimension, got %v", v.Dim)
	}

	ratio := v.Div(MetersPerSec(3.0))
	if ratio.Dim != Dimensionless {
		t.Errorf("expected dimensionless ratio, got %v", ratio.Dim)
	}
}

func TestCmpRequiresSameDimension(t *testing.T) {
	c, err := Meters(1.0).Cmp(Meters(2.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != -1 {
		t.Errorf("expected -1, got %d", c)
	}

	if _, err := Meters(1.0).Cmp(Kilograms(2.0)); err == nil {
		t.Error("expected dimension error")
	}
}

func TestPlanckScales(t *testing.T) {
	// Published values: m_P ≈ 2.176e-8 kg, l_P ≈ 1.616e-35 m, t_P ≈ 5.391e-44 s.
	if math.Abs(PlanckMass-2.176e-8)/2.176e-8 > 1e-3 {
		t.Errorf("planck mass out of range: %e", PlanckMass)
	}
	if math.Abs(PlanckLength-1.616e-35)/1.616e-35 > 1e-3 {
		t.Errorf("planck length out of range: %e", PlanckLength)
	}
	if math.Abs(PlanckTime-5.391e-44)/5.391e-44 > 1e-3 {
		t.Errorf("planck time out of range: %e", PlanckTime)
	}
}

func TestNaturalRoundTrip(t *testing.T) {
	m := Kilograms(ElectronMass)

	nat, err := ToNatural(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := FromNatural(nat, MassDim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(back.Value-ElectronMass)/ElectronMass > 1e-12 {
		t.Errorf("round trip drifted: %e vs %e", back.Value, ElectronMass)
	}
}

func TestToNaturalRejectsVelocity(t *testing.T) {
	if _, err := ToNatural(MetersPerSec(10)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestDimensionString(t *testing.T) {
	if s := VelocityDim.String(); s != "m·s^-1" {
		t.Errorf("unexpected string: %s", s)
	}
	if s := Dimensionless.String(); s != "1" {
		t.Errorf("unexpected string: %s", s)
	}
}
