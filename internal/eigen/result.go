package eigen

import (
	"math/cmplx"
	"sort"
)

// Stats carries solver diagnostics alongside the eigenpairs.
type Stats struct {
	Iterations int
	Residual   float64
}

// Result is one batch of raw eigenpairs. Vectors[i] corresponds to
// Values[i] for all i; post-processing that permutes one must permute the
// other identically.
type Result struct {
	Values    []complex128
	Vectors   [][]complex128
	Converged bool
	Stats     Stats
}

// Op is a linear operator usable only through its action on vectors.
type Op interface {
	Dim() int
	Apply(v []float64) ([]float64, error)
}

func key(by By, v complex128) float64 {
	switch by {
	case ByReal:
		return real(v)
	case ByImag:
		return imag(v)
	default:
		return cmplx.Abs(v)
	}
}

// rankPerm returns the permutation ordering candidate eigenvalues per the
// comparison key, descending, or ascending when the smallest part of the
// spectrum is requested.
func rankPerm(vals []complex128, which Which, by By) []int {
	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	asc := which == SmallestModulus
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := key(by, vals[perm[a]]), key(by, vals[perm[b]])
		if asc {
			return ka < kb
		}
		return ka > kb
	})
	return perm
}
