package systems

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// HopfCycle is the planar normal form with an attracting circular limit
// cycle. In polar coordinates:
//
//	dr/dt = a·r(1 - r²)
//	dθ/dt = ω
//
// The unit circle is a periodic orbit of period 2π/ω with Floquet
// multipliers {1, exp(-4πa/ω)}, which makes it the reference fixture for
// end-to-end checks.
//
// Parameter vector: [a, ω]; missing entries fall back to the struct values.
type HopfCycle struct {
	A     float64
	Omega float64
}

func NewHopfCycle() *HopfCycle {
	return &HopfCycle{A: 0.5, Omega: 1.0}
}

func (h *HopfCycle) Dim() int { return 2 }

func (h *HopfCycle) params(p dynsys.Params) (a, omega float64) {
	a, omega = h.A, h.Omega
	if len(p) > 0 {
		a = p[0]
	}
	if len(p) > 1 {
		omega = p[1]
	}
	return a, omega
}

func (h *HopfCycle) Derive(state dynsys.State, p dynsys.Params) dynsys.State {
	a, omega := h.params(p)
	x, y := state[0], state[1]
	s := 1 - x*x - y*y

	dx := a*x*s - omega*y
	dy := a*y*s + omega*x

	return dynsys.State{dx, dy}
}

func (h *HopfCycle) Jacobian(state dynsys.State, p dynsys.Params) *mat.Dense {
	a, omega := h.params(p)
	x, y := state[0], state[1]

	return mat.NewDense(2, 2, []float64{
		a * (1 - 3*x*x - y*y), -2*a*x*y - omega,
		-2*a*x*y + omega, a * (1 - x*x - 3*y*y),
	})
}

// Period of the circular orbit.
func (h *HopfCycle) Period() float64 {
	return 2 * math.Pi / h.Omega
}

// Orbit samples the unit circle at m uniformly spaced times and appends
// the period, in the shooting/trapezoid buffer layout.
func (h *HopfCycle) Orbit(m int) dynsys.State {
	t := h.Period()
	buf := make(dynsys.State, 2*m+1)
	for i := 0; i < m; i++ {
		theta := 2 * math.Pi * float64(i) / float64(m)
		buf[2*i] = math.Cos(theta)
		buf[2*i+1] = math.Sin(theta)
	}
	buf[2*m] = t
	return buf
}

// ClosedOrbit is the trapezoid layout: m slices spanning the full period
// with the last slice equal to the first.
func (h *HopfCycle) ClosedOrbit(m int) dynsys.State {
	t := h.Period()
	buf := make(dynsys.State, 2*m+1)
	for i := 0; i < m; i++ {
		theta := 2 * math.Pi * float64(i) / float64(m-1)
		buf[2*i] = math.Cos(theta)
		buf[2*i+1] = math.Sin(theta)
	}
	buf[2*m] = t
	return buf
}

// GetParams implements dynsys.Configurable
func (h *HopfCycle) GetParams() map[string]float64 {
	return map[string]float64{"a": h.A, "omega": h.Omega}
}

// SetParam implements dynsys.Configurable
func (h *HopfCycle) SetParam(name string, value float64) error {
	switch name {
	case "a":
		h.A = value
	case "omega":
		h.Omega = value
	default:
		return fmt.Errorf("hopf: unknown parameter %q", name)
	}
	return nil
}
