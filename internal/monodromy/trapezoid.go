package monodromy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/linsolve"
)

// Trapezoid represents monodromy implicitly through the trapezoid-rule
// recurrence linking consecutive time slices. One cycle around the orbit
// is M-1 implicit trapezoid steps, the last slice being identified with
// the first.
type Trapezoid struct {
	Field     dynsys.VectorField
	Lin       linsolve.Solver
	Slices    []dynsys.State
	Period    float64
	Fractions []float64
	Params    dynsys.Params
}

func (t *Trapezoid) Dim() int {
	return t.Field.Dim()
}

// step advances v across slice interval ii: explicit half step with the
// predecessor's Jacobian, implicit half step with the local one.
func (t *Trapezoid) step(ii int, v []float64) ([]float64, error) {
	n := t.Dim()
	h := t.Period * t.Fractions[ii]

	jprev := t.Field.Jacobian(t.Slices[ii-1], t.Params)
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += jprev.At(i, j) * v[j]
		}
		rhs[i] = v[i] + 0.5*h*sum
	}

	jloc := t.Field.Jacobian(t.Slices[ii], t.Params)
	x, err := t.Lin.Solve(jloc, rhs, 1, -0.5*h)
	if err != nil {
		return nil, fmt.Errorf("slice %d: %w", ii, err)
	}
	return x, nil
}

func (t *Trapezoid) Apply(v []float64) ([]float64, error) {
	n := t.Dim()
	if len(v) != n {
		return nil, fmt.Errorf("%w: tangent has dim %d, field has dim %d", dynsys.ErrDimensionMismatch, len(v), n)
	}

	cur := dynsys.State(v).Clone()
	for ii := 1; ii < len(t.Slices); ii++ {
		next, err := t.step(ii, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ApplyAll runs the same recurrence but retains the vector after every
// step, yielding the eigenvector expressed in each time slice. The
// untransformed input is appended as the final entry, closing the cycle.
func (t *Trapezoid) ApplyAll(v []float64) ([][]float64, error) {
	n := t.Dim()
	if len(v) != n {
		return nil, fmt.Errorf("%w: tangent has dim %d, field has dim %d", dynsys.ErrDimensionMismatch, len(v), n)
	}

	out := make([][]float64, 0, len(t.Slices))
	cur := dynsys.State(v).Clone()
	for ii := 1; ii < len(t.Slices); ii++ {
		next, err := t.step(ii, cur)
		if err != nil {
			return nil, err
		}
		cur = next
		out = append(out, cur)
	}
	out = append(out, dynsys.State(v).Clone())
	return out, nil
}

// shiftJac builds a0·I + a1·J entrywise. Scaling J inside the sum, rather
// than pre-scaling the whole matrix, keeps the diagonal free of an extra
// rounding step.
func shiftJac(j *mat.Dense, a0, a1, h float64) *mat.Dense {
	n, _ := j.Dims()
	out := mat.NewDense(n, n, nil)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := a1 * h * j.At(r, c)
			if r == c {
				v += a0
			}
			out.Set(r, c, v)
		}
	}
	return out
}

// Dense assembles the monodromy as the product of per-interval transfer
// matrices (I - (h/2)·J_ii)⁻¹ · (I + (h/2)·J_{ii-1}).
func (t *Trapezoid) Dense() (*mat.Dense, error) {
	n := t.Dim()
	prod, err := t.transfer(1)
	if err != nil {
		return nil, err
	}
	for ii := 2; ii < len(t.Slices); ii++ {
		step, err := t.transfer(ii)
		if err != nil {
			return nil, err
		}
		next := mat.NewDense(n, n, nil)
		next.Mul(step, prod)
		prod = next
	}
	return prod, nil
}

func (t *Trapezoid) transfer(ii int) (*mat.Dense, error) {
	h := t.Period * t.Fractions[ii]
	implicit := shiftJac(t.Field.Jacobian(t.Slices[ii], t.Params), 1, -0.5, h)
	explicit := shiftJac(t.Field.Jacobian(t.Slices[ii-1], t.Params), 1, 0.5, h)

	var step mat.Dense
	if err := step.Solve(implicit, explicit); err != nil {
		return nil, fmt.Errorf("slice %d: %w: %v", ii, dynsys.ErrSingular, err)
	}
	return &step, nil
}
