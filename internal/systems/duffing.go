package systems

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// Duffing is the periodically forced Duffing oscillator, embedded as an
// autonomous three-dimensional system with the forcing phase as third
// state:
//
//	dx/dt = v
//	dv/dt = -δv - αx - βx³ + γ·cos(θ)
//	dθ/dt = ω
//
// Parameter vector: [δ, α, β, γ, ω].
type Duffing struct {
	Delta float64
	Alpha float64
	Beta  float64
	Gamma float64
	Omega float64
}

func NewDuffing() *Duffing {
	return &Duffing{Delta: 0.3, Alpha: -1.0, Beta: 1.0, Gamma: 0.37, Omega: 1.2}
}

func (d *Duffing) Dim() int { return 3 }

func (d *Duffing) params(p dynsys.Params) (delta, alpha, beta, gamma, omega float64) {
	vals := []float64{d.Delta, d.Alpha, d.Beta, d.Gamma, d.Omega}
	for i := range vals {
		if i < len(p) {
			vals[i] = p[i]
		}
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4]
}

func (d *Duffing) Derive(state dynsys.State, p dynsys.Params) dynsys.State {
	delta, alpha, beta, gamma, omega := d.params(p)
	x, v, theta := state[0], state[1], state[2]

	dx := v
	dv := -delta*v - alpha*x - beta*x*x*x + gamma*math.Cos(theta)

	return dynsys.State{dx, dv, omega}
}

func (d *Duffing) Jacobian(state dynsys.State, p dynsys.Params) *mat.Dense {
	delta, alpha, beta, gamma, _ := d.params(p)
	x, theta := state[0], state[2]

	return mat.NewDense(3, 3, []float64{
		0, 1, 0,
		-alpha - 3*beta*x*x, -delta, -gamma * math.Sin(theta),
		0, 0, 0,
	})
}

// ForcingPeriod is the period of the forcing, the natural period for
// stroboscopic sections.
func (d *Duffing) ForcingPeriod() float64 {
	return 2 * math.Pi / d.Omega
}

// GetParams implements dynsys.Configurable
func (d *Duffing) GetParams() map[string]float64 {
	return map[string]float64{
		"delta": d.Delta,
		"alpha": d.Alpha,
		"beta":  d.Beta,
		"gamma": d.Gamma,
		"omega": d.Omega,
	}
}

// SetParam implements dynsys.Configurable
func (d *Duffing) SetParam(name string, value float64) error {
	switch name {
	case "delta":
		d.Delta = value
	case "alpha":
		d.Alpha = value
	case "beta":
		d.Beta = value
	case "gamma":
		d.Gamma = value
	case "omega":
		d.Omega = value
	default:
		return fmt.Errorf("duffing: unknown parameter %q", name)
	}
	return nil
}
