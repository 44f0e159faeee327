package orbit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/monodromy"
)

// Problem is a periodic-orbit discretization. It is the single dispatch
// point over the three variants: given a wrapped solution it produces the
// monodromy operator, and callers never branch on the concrete variant.
type Problem interface {
	Monodromy(w Wrapper) (monodromy.Operator, error)
}

// Wrapper binds a problem variant, a raw solution buffer and a parameter
// vector, optionally carrying a precomputed extended Jacobian. It is
// immutable after construction.
type Wrapper struct {
	Problem Problem
	Orbit   dynsys.State
	Params  dynsys.Params
	Jac     *mat.Dense
}

func NewWrapper(p Problem, orb dynsys.State, params dynsys.Params) Wrapper {
	return Wrapper{Problem: p, Orbit: orb.Clone(), Params: params.Clone()}
}

// WithJacobian returns a copy of w carrying the precomputed extended
// Jacobian of the discretized system.
func (w Wrapper) WithJacobian(jac *mat.Dense) Wrapper {
	w.Jac = jac
	return w
}

// slices cuts the leading m·n entries of buf into m state views.
func slices(buf dynsys.State, m, n int) []dynsys.State {
	out := make([]dynsys.State, m)
	for i := 0; i < m; i++ {
		out[i] = buf[i*n : (i+1)*n]
	}
	return out
}

func uniform(m int) []float64 {
	fr := make([]float64, m)
	for i := range fr {
		fr[i] = 1 / float64(m)
	}
	return fr
}

func checkLen(buf dynsys.State, want int, variant string) error {
	if len(buf) != want {
		return fmt.Errorf("%w: %s buffer has length %d, want %d", dynsys.ErrInvalidOrbit, variant, len(buf), want)
	}
	return nil
}
