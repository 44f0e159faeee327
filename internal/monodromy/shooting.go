package monodromy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/flow"
)

// Shooting computes monodromy for a multiple-shooting orbit: the tangent
// vector is transported serially through the differential of the flow over
// each time slice.
type Shooting struct {
	Flow      flow.Flow
	Slices    []dynsys.State
	Period    float64
	Fractions []float64
	Params    dynsys.Params

	// Jac, when set, is the precomputed block Jacobian of the shooting
	// system; Dense then multiplies its diagonal blocks instead of
	// re-evaluating the flow.
	Jac *mat.Dense
}

func (s *Shooting) Dim() int {
	return len(s.Slices[0])
}

func (s *Shooting) Apply(v []float64) ([]float64, error) {
	n := s.Dim()
	if len(v) != n {
		return nil, fmt.Errorf("%w: tangent has dim %d, state has dim %d", dynsys.ErrDimensionMismatch, len(v), n)
	}

	cur := dynsys.State(v).Clone()
	for ii := 0; ii < len(s.Slices); ii++ {
		next, err := s.Flow.DifferentialFlow(s.Slices[ii], s.Params, cur, s.Fractions[ii]*s.Period)
		if err != nil {
			return nil, fmt.Errorf("slice %d: %w", ii, err)
		}
		cur = next
	}
	return cur, nil
}

func (s *Shooting) Dense() (*mat.Dense, error) {
	if s.Jac != nil {
		return s.denseFromBlocks()
	}

	// The flow composition across slices is linear and associative, so one
	// full-period differential from the first slice yields each column.
	n := s.Dim()
	m := mat.NewDense(n, n, nil)
	e := make(dynsys.State, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		col, err := s.Flow.DifferentialFlow(s.Slices[0], s.Params, e, s.Period)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		e[j] = 0
		m.SetCol(j, col)
	}
	return m, nil
}

// denseFromBlocks extracts the diagonal n-by-n blocks of the precomputed
// block Jacobian, one per slice, and composes them left to right. No flow
// evaluation is needed.
func (s *Shooting) denseFromBlocks() (*mat.Dense, error) {
	n := s.Dim()
	nslices := len(s.Slices)
	rows, cols := s.Jac.Dims()
	if rows < n*nslices || cols < n*nslices {
		return nil, fmt.Errorf("%w: block jacobian is %dx%d, need at least %dx%d", dynsys.ErrDimensionMismatch, rows, cols, n*nslices, n*nslices)
	}

	prod := mat.DenseCopyOf(s.Jac.Slice(0, n, 0, n))
	for ii := 1; ii < nslices; ii++ {
		block := s.Jac.Slice(ii*n, (ii+1)*n, ii*n, (ii+1)*n)
		next := mat.NewDense(n, n, nil)
		next.Mul(block, prod)
		prod = next
	}
	return prod, nil
}
