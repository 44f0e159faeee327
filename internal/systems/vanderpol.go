package systems

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// VanDerPol implements the Van der Pol oscillator.
// State: [x, y] where y = dx/dt
// Equations:
//
//	dx/dt = y
//	dy/dt = μ(1 - x²)y - x
//
// Parameter vector: [μ].
type VanDerPol struct {
	Mu float64
}

func NewVanDerPol() *VanDerPol {
	return &VanDerPol{
		Mu: 1.0, // Classic value for limit cycle
	}
}

func (v *VanDerPol) Dim() int { return 2 }

func (v *VanDerPol) mu(p dynsys.Params) float64 {
	if len(p) > 0 {
		return p[0]
	}
	return v.Mu
}

func (v *VanDerPol) Derive(state dynsys.State, p dynsys.Params) dynsys.State {
	mu := v.mu(p)
	x, y := state[0], state[1]

	dx := y
	dy := mu*(1-x*x)*y - x

	return dynsys.State{dx, dy}
}

func (v *VanDerPol) Jacobian(state dynsys.State, p dynsys.Params) *mat.Dense {
	mu := v.mu(p)
	x, y := state[0], state[1]

	return mat.NewDense(2, 2, []float64{
		0, 1,
		-2*mu*x*y - 1, mu * (1 - x*x),
	})
}

func (v *VanDerPol) DefaultState() dynsys.State {
	return dynsys.State{2.0, 0.0}
}

// GetParams implements dynsys.Configurable
func (v *VanDerPol) GetParams() map[string]float64 {
	return map[string]float64{"mu": v.Mu}
}

// SetParam implements dynsys.Configurable
func (v *VanDerPol) SetParam(name string, value float64) error {
	if name != "mu" {
		return fmt.Errorf("vanderpol: unknown parameter %q", name)
	}
	v.Mu = value
	return nil
}
