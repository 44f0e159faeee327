package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// SolveDense computes the full spectrum of m and returns the k eigenpairs
// ranked per cfg.
func SolveDense(cfg DenseConfig, m *mat.Dense, k int) (*Result, error) {
	n, c := m.Dims()
	if n != c {
		return nil, dynsys.ErrDimensionMismatch
	}
	if k <= 0 || k > n {
		k = n
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m, mat.EigenRight); !ok {
		return nil, fmt.Errorf("dense eigendecomposition failed (%dx%d)", n, n)
	}

	vals := eig.Values(nil)
	var cvecs mat.CDense
	eig.VectorsTo(&cvecs)

	perm := rankPerm(vals, cfg.Which, cfg.By)

	res := &Result{
		Values:    make([]complex128, k),
		Vectors:   make([][]complex128, k),
		Converged: true,
		Stats:     Stats{Iterations: 1},
	}
	for i := 0; i < k; i++ {
		j := perm[i]
		res.Values[i] = vals[j]
		vec := make([]complex128, n)
		for r := 0; r < n; r++ {
			vec[r] = cvecs.At(r, j)
		}
		res.Vectors[i] = vec
	}
	return res, nil
}
