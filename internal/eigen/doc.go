// Package eigen provides the eigensolver collaborators for monodromy
// computations and the request normalizer that forces largest-modulus
// selection.
//
// Three solver families are supported:
//
//   - [SolveDense]: full dense spectrum of a materialized matrix
//   - [SolveArnoldi]: matrix-free Arnoldi iteration, dominant Ritz pairs
//   - [SolveSubspace]: matrix-free block power iteration with Rayleigh-Ritz
//
// # Normalization
//
// Every config must pass through [Normalize] before a monodromy solve.
// Eigensolvers tend to default to largest-real ordering; Floquet analysis
// needs the eigenvalues of largest modulus, since bifurcations of periodic
// orbits are crossings of the unit circle:
//
//	cfg, err := eigen.Normalize(eigen.ArnoldiConfig{Tol: 1e-10})
package eigen
