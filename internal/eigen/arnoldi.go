package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const breakdownTol = 1e-12

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// startVector returns a deterministic, mildly uneven unit vector so runs
// are reproducible without a seed.
func startVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1 + 0.01*float64(i)
	}
	nv := norm(v)
	for i := range v {
		v[i] /= nv
	}
	return v
}

// ritzPairs extracts the eigenpairs of the leading s-by-s block of the
// Hessenberg matrix and lifts them through the Krylov basis.
func ritzPairs(h [][]float64, basis [][]float64, s int) ([]complex128, [][]complex128, []float64, error) {
	hs := mat.NewDense(s, s, nil)
	for i := 0; i < s; i++ {
		for j := 0; j < s; j++ {
			hs.Set(i, j, h[i][j])
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(hs, mat.EigenRight); !ok {
		return nil, nil, nil, fmt.Errorf("hessenberg eigendecomposition failed (s=%d)", s)
	}
	vals := eig.Values(nil)
	var small mat.CDense
	eig.VectorsTo(&small)

	n := len(basis[0])
	vecs := make([][]complex128, s)
	last := make([]float64, s)
	for j := 0; j < s; j++ {
		vec := make([]complex128, n)
		for t := 0; t < s; t++ {
			c := small.At(t, j)
			if c == 0 {
				continue
			}
			for r := 0; r < n; r++ {
				vec[r] += c * complex(basis[t][r], 0)
			}
		}
		vecs[j] = vec
		re, im := real(small.At(s-1, j)), imag(small.At(s-1, j))
		last[j] = math.Hypot(re, im)
	}
	return vals, vecs, last, nil
}

// SolveArnoldi runs an Arnoldi iteration with full reorthogonalization on
// the matrix-free operator op, returning the k dominant Ritz pairs per cfg.
// A non-converged run still returns its best Ritz pairs, flagged.
func SolveArnoldi(cfg ArnoldiConfig, op Op, k int) (*Result, error) {
	n := op.Dim()
	if k <= 0 {
		k = 1
	}
	if k > n {
		k = n
	}
	tol := cfg.Tol
	if tol <= 0 {
		tol = 1e-10
	}
	maxDim := cfg.MaxDim
	if maxDim <= 0 {
		maxDim = 2*k + 20
	}
	if maxDim > n {
		maxDim = n
	}
	if maxDim < k {
		maxDim = k
	}

	basis := make([][]float64, 1, maxDim+1)
	basis[0] = startVector(n)

	h := make([][]float64, maxDim+1)
	for i := range h {
		h[i] = make([]float64, maxDim)
	}

	var (
		vals  []complex128
		vecs  [][]complex128
		last  []float64
		subN  float64
		steps int
		conv  bool
	)

	for j := 0; j < maxDim; j++ {
		w, err := op.Apply(basis[j])
		if err != nil {
			return nil, err
		}
		// Modified Gram-Schmidt with one reorthogonalization pass.
		for pass := 0; pass < 2; pass++ {
			for i := 0; i <= j; i++ {
				c := dot(basis[i], w)
				h[i][j] += c
				for r := range w {
					w[r] -= c * basis[i][r]
				}
			}
		}
		subN = norm(w)
		h[j+1][j] = subN
		steps = j + 1

		if subN < breakdownTol {
			// Lucky breakdown: exact invariant subspace.
			vals, vecs, last, err = ritzPairs(h, basis, j+1)
			if err != nil {
				return nil, err
			}
			conv = true
			break
		}

		next := make([]float64, n)
		for r := range w {
			next[r] = w[r] / subN
		}
		basis = append(basis, next)

		if j+1 < k {
			continue
		}
		vals, vecs, last, err = ritzPairs(h, basis[:j+1], j+1)
		if err != nil {
			return nil, err
		}
		perm := rankPerm(vals, cfg.Which, cfg.By)
		worst := 0.0
		for i := 0; i < k && i < len(perm); i++ {
			res := subN * last[perm[i]]
			if res > worst {
				worst = res
			}
		}
		if cfg.Observer != nil {
			cfg.Observer(j+1, worst)
		}
		if worst < tol {
			conv = true
			break
		}
	}

	if vals == nil {
		return nil, fmt.Errorf("arnoldi produced no Ritz pairs (k=%d, maxDim=%d)", k, maxDim)
	}

	perm := rankPerm(vals, cfg.Which, cfg.By)
	if k > len(perm) {
		k = len(perm)
	}
	res := &Result{
		Values:    make([]complex128, k),
		Vectors:   make([][]complex128, k),
		Converged: conv,
		Stats:     Stats{Iterations: steps},
	}
	for i := 0; i < k; i++ {
		j := perm[i]
		res.Values[i] = vals[j]
		res.Vectors[i] = vecs[j]
		r := subN * last[j]
		if r > res.Stats.Residual {
			res.Stats.Residual = r
		}
	}
	return res, nil
}
