package floquet

import (
	"math/cmplx"
	"sort"

	"github.com/san-kum/floq/internal/eigen"
)

// Result holds Floquet exponents sorted by descending real part, the
// eigenvectors aligned by index, and the solver's convergence state.
// Exponents are logs of the multipliers: real(exponent) = log|multiplier|,
// so the order is exactly descending multiplier modulus.
type Result struct {
	Exponents []complex128
	Vectors   [][]complex128
	Converged bool
	Stats     eigen.Stats
}

// Multipliers returns exp of each exponent, in the same order.
func (r *Result) Multipliers() []complex128 {
	out := make([]complex128, len(r.Exponents))
	for i, e := range r.Exponents {
		out[i] = cmplx.Exp(e)
	}
	return out
}

// Unstable counts exponents with real part above tol, ignoring the trivial
// exponent closest to zero.
func (r *Result) Unstable(tol float64) int {
	count := 0
	trivial := r.trivialIndex()
	for i, e := range r.Exponents {
		if i == trivial {
			continue
		}
		if real(e) > tol {
			count++
		}
	}
	return count
}

// trivialIndex locates the exponent nearest zero, the one every autonomous
// periodic orbit carries along the flow direction. Returns -1 when none is
// close to zero.
func (r *Result) trivialIndex() int {
	best, idx := 0.0, -1
	for i, e := range r.Exponents {
		d := cmplx.Abs(e)
		if idx == -1 || d < best {
			best, idx = d, i
		}
	}
	if idx >= 0 && best > 1e-3 {
		return -1
	}
	return idx
}

// sortPerm returns the permutation ordering vals by descending real part,
// ties broken by descending imaginary part for a stable layout of
// conjugate pairs.
func sortPerm(vals []complex128) []int {
	perm := make([]int, len(vals))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		ra, rb := real(vals[perm[a]]), real(vals[perm[b]])
		if ra != rb {
			return ra > rb
		}
		return imag(vals[perm[a]]) > imag(vals[perm[b]])
	})
	return perm
}
