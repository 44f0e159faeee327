// Package linsolve provides the linear-solve collaborator used by the
// trapezoid monodromy recurrence: solving (a0·I + a1·J)x = rhs.
package linsolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

type Solver interface {
	// Solve returns x with (a0·I + a1·J)x = rhs.
	Solve(jac *mat.Dense, rhs []float64, a0, a1 float64) ([]float64, error)
}

// Dense solves via LU factorization of the shifted matrix.
type Dense struct{}

func (Dense) Solve(jac *mat.Dense, rhs []float64, a0, a1 float64) ([]float64, error) {
	n, c := jac.Dims()
	if n != c || len(rhs) != n {
		return nil, dynsys.ErrDimensionMismatch
	}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := a1 * jac.At(i, j)
			if i == j {
				v += a0
			}
			a.Set(i, j, v)
		}
	}

	var x mat.VecDense
	if err := x.SolveVec(a, mat.NewVecDense(n, rhs)); err != nil {
		return nil, fmt.Errorf("%w: %v", dynsys.ErrSingular, err)
	}

	out := make([]float64, n)
	copy(out, x.RawVector().Data)
	return out, nil
}
