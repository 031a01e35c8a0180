package sweep

// Metric observes samples during a sweep and reduces them to one number.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// MinTau tracks the smallest combined dilation factor seen.
type MinTau struct {
	min     float64
	samples int
}

func NewMinTau() *MinTau { return &MinTau{} }

func (m *MinTau) Name() string { return "min_tau" }

func (m *MinTau) Observe(s Sample) {
	if m.samples == 0 || s.Tau < m.min {
		m.min = s.Tau
	}
	m.samples++
}

func (m *MinTau) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *MinTau) Reset() {
	m.min = 0
	m.samples = 0
}

// MaxApparent tracks the largest apparent-velocity magnification seen.
type MaxApparent struct {
	max float64
}

func NewMaxApparent() *MaxApparent { return &MaxApparent{} }

func (m *MaxApparent) Name() string { return "max_apparent" }

func (m *MaxApparent) Observe(s Sample) {
	if s.Apparent > m.max {
		m.max = s.Apparent
	}
}

func (m *MaxApparent) Value() float64 { return m.max }

func (m *MaxApparent) Reset() { m.max = 0 }

// HorizonProximity tracks how close a radius sweep came to the horizon, as
// the smallest (r - Rs)/Rs seen. Reports 0 for sweeps that never resolve a
// radial coordinate.
type HorizonProximity struct {
	rs      float64
	min     float64
	samples int
}

func NewHorizonProximity(rs float64) *HorizonProximity {
	return &HorizonProximity{rs: rs}
}

func (m *HorizonProximity) Name() string { return "horizon_proximity" }

func (m *HorizonProximity) Observe(s Sample) {
	if m.rs <= 0 {
		return
	}
	// s.X is in Rs units for radius sweeps; (x-1) is the gap to the horizon.
	gap := s.X - 1
	if m.samples == 0 || gap < m.min {
		m.min = gap
	}
	m.samples++
}

func (m *HorizonProximity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.min
}

func (m *HorizonProximity) Reset() {
	m.min = 0
	m.samples = 0
}
