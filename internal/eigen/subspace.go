package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// realTimesComplex multiplies the n-by-s real matrix a with a complex
// s-vector.
func realTimesComplex(a *mat.Dense, y []complex128) []complex128 {
	n, s := a.Dims()
	out := make([]complex128, n)
	for t := 0; t < s; t++ {
		if y[t] == 0 {
			continue
		}
		for r := 0; r < n; r++ {
			out[r] += complex(a.At(r, t), 0) * y[t]
		}
	}
	return out
}

// SolveSubspace runs block power iteration with QR re-orthonormalization
// and Rayleigh-Ritz extraction on the matrix-free operator op.
func SolveSubspace(cfg SubspaceConfig, op Op, k int) (*Result, error) {
	n := op.Dim()
	if k <= 0 {
		k = 1
	}
	if k > n {
		k = n
	}
	s := k + 2
	if s > n {
		s = n
	}
	tol := cfg.Tol
	if tol <= 0 {
		tol = 1e-10
	}
	maxIter := cfg.MaxIter
	if maxIter <= 0 {
		maxIter = 200
	}

	// Deterministic block of mildly uneven columns.
	x := mat.NewDense(n, s, nil)
	for j := 0; j < s; j++ {
		for i := 0; i < n; i++ {
			x.Set(i, j, math.Sin(float64(1+i+j*n))+0.1*float64(j+1))
		}
	}

	var (
		vals       []complex128
		vecs       [][]complex128
		conv       bool
		iterations int
		worst      float64
	)

	for it := 1; it <= maxIter; it++ {
		iterations = it

		var qr mat.QR
		qr.Factorize(x)
		var qfull mat.Dense
		qr.QTo(&qfull)
		q := mat.DenseCopyOf(qfull.Slice(0, n, 0, s))

		// Z = A·Q, one operator application per block column.
		z := mat.NewDense(n, s, nil)
		col := make([]float64, n)
		for j := 0; j < s; j++ {
			mat.Col(col, j, q)
			av, err := op.Apply(col)
			if err != nil {
				return nil, err
			}
			z.SetCol(j, av)
		}

		// Rayleigh-Ritz: B = Qᵀ·A·Q, eigenpairs of B lifted through Q.
		b := mat.NewDense(s, s, nil)
		b.Mul(q.T(), z)

		var eig mat.Eigen
		if ok := eig.Factorize(b, mat.EigenRight); !ok {
			return nil, fmt.Errorf("rayleigh-ritz eigendecomposition failed (s=%d)", s)
		}
		bvals := eig.Values(nil)
		var small mat.CDense
		eig.VectorsTo(&small)

		vals = bvals
		vecs = make([][]complex128, s)
		resids := make([]float64, s)
		for j := 0; j < s; j++ {
			y := make([]complex128, s)
			for t := 0; t < s; t++ {
				y[t] = small.At(t, j)
			}
			xr := realTimesComplex(q, y)
			zr := realTimesComplex(z, y)
			rsum := 0.0
			for r := 0; r < n; r++ {
				d := zr[r] - bvals[j]*xr[r]
				rsum += real(d)*real(d) + imag(d)*imag(d)
			}
			vecs[j] = xr
			resids[j] = math.Sqrt(rsum) / math.Max(1, cmplx.Abs(bvals[j]))
		}

		perm := rankPerm(vals, cfg.Which, cfg.By)
		worst = 0
		for i := 0; i < k && i < len(perm); i++ {
			if resids[perm[i]] > worst {
				worst = resids[perm[i]]
			}
		}
		if worst < tol {
			conv = true
			break
		}

		x.Copy(z)
	}

	perm := rankPerm(vals, cfg.Which, cfg.By)
	if k > len(perm) {
		k = len(perm)
	}
	res := &Result{
		Values:    make([]complex128, k),
		Vectors:   make([][]complex128, k),
		Converged: conv,
		Stats:     Stats{Iterations: iterations, Residual: worst},
	}
	for i := 0; i < k; i++ {
		res.Values[i] = vals[perm[i]]
		res.Vectors[i] = vecs[perm[i]]
	}
	return res, nil
}
