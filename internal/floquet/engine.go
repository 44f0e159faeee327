package floquet

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/eigen"
	"github.com/san-kum/floq/internal/orbit"
)

// Engine computes Floquet exponents of a periodic orbit. The zero value is
// usable; diagnostics are dropped unless a sink is set.
type Engine struct {
	Diag dynsys.Diag
}

func (e Engine) sink() dynsys.Diag {
	if e.Diag == nil {
		return dynsys.DiscardDiag
	}
	return e.Diag
}

// Compute builds the monodromy operator for the wrapped orbit, runs the
// configured eigensolver once, and returns the exponents sorted by
// descending real part with their eigenvectors aligned.
func (e Engine) Compute(w orbit.Wrapper, cfg eigen.Config, k int) (*Result, error) {
	ncfg, err := eigen.Normalize(cfg)
	if err != nil {
		return nil, err
	}

	op, err := w.Problem.Monodromy(w)
	if err != nil {
		return nil, err
	}

	var raw *eigen.Result
	switch c := ncfg.(type) {
	case eigen.DenseConfig:
		e.sink().Report("materializing the %dx%d monodromy matrix; impractical beyond small problems, prefer an iterative solver", op.Dim(), op.Dim())
		m, err := op.Dense()
		if err != nil {
			return nil, err
		}
		raw, err = eigen.SolveDense(c, m, k)
		if err != nil {
			return nil, err
		}
	case eigen.ArnoldiConfig:
		raw, err = eigen.SolveArnoldi(c, op, k)
		if err != nil {
			return nil, err
		}
	case eigen.SubspaceConfig:
		raw, err = eigen.SolveSubspace(c, op, k)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %T", dynsys.ErrUnsupportedSolver, ncfg)
	}

	return e.postprocess(raw), nil
}

// ComputeFromJacobian is the simplified finite-difference engine: instead
// of assembling the trapezoid recurrence it reuses the leading
// (n·m-n)-square block of an already-assembled extended Jacobian as a
// stand-in for the monodromy operator. Less accurate for extreme
// multipliers, adequate for bifurcation detection.
func (e Engine) ComputeFromJacobian(jac *mat.Dense, n, m, k int, cfg eigen.Config) (*Result, error) {
	ncfg, err := eigen.Normalize(cfg)
	if err != nil {
		return nil, err
	}

	dim := n*m - n
	rows, cols := jac.Dims()
	if rows < dim || cols < dim {
		return nil, fmt.Errorf("%w: extended jacobian is %dx%d, need at least %dx%d", dynsys.ErrDimensionMismatch, rows, cols, dim, dim)
	}
	block := mat.DenseCopyOf(jac.Slice(0, dim, 0, dim))

	var raw *eigen.Result
	switch c := ncfg.(type) {
	case eigen.DenseConfig:
		raw, err = eigen.SolveDense(c, block, k)
	case eigen.ArnoldiConfig:
		raw, err = eigen.SolveArnoldi(c, denseOp{block}, k)
	case eigen.SubspaceConfig:
		raw, err = eigen.SolveSubspace(c, denseOp{block}, k)
	default:
		return nil, fmt.Errorf("%w: %T", dynsys.ErrUnsupportedSolver, ncfg)
	}
	if err != nil {
		return nil, err
	}
	return e.postprocess(raw), nil
}

// postprocess converts raw eigenvalues to log space, sorts by descending
// real part of the log (equivalently descending modulus), and reorders the
// eigenvectors with the same permutation. Convergence information passes
// through untouched.
func (e Engine) postprocess(raw *eigen.Result) *Result {
	for _, v := range raw.Values {
		if cmplx.IsInf(v) {
			e.sink().Report("infinite floquet multiplier: degenerate or ill-posed monodromy")
		}
	}

	logs := make([]complex128, len(raw.Values))
	for i, v := range raw.Values {
		logs[i] = cmplx.Log(v)
	}

	perm := sortPerm(logs)

	res := &Result{
		Exponents: make([]complex128, len(logs)),
		Vectors:   make([][]complex128, len(logs)),
		Converged: raw.Converged,
		Stats:     raw.Stats,
	}
	for i, j := range perm {
		res.Exponents[i] = logs[j]
		if j < len(raw.Vectors) {
			res.Vectors[i] = raw.Vectors[j]
		}
	}
	return res
}

// denseOp adapts a materialized matrix to the matrix-free solver interface.
type denseOp struct {
	m *mat.Dense
}

func (d denseOp) Dim() int {
	r, _ := d.m.Dims()
	return r
}

func (d denseOp) Apply(v []float64) ([]float64, error) {
	n := d.Dim()
	if len(v) != n {
		return nil, dynsys.ErrDimensionMismatch
	}
	out := make([]float64, n)
	vec := mat.NewVecDense(n, v)
	res := mat.NewVecDense(n, out)
	res.MulVec(d.m, vec)
	return out, nil
}
