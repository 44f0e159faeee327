// Package floquet computes the Floquet exponents of a periodic orbit: the
// complex logs of the eigenvalues of its monodromy operator.
//
// The [Engine] orchestrates one evaluation: normalize the eigensolver
// request to largest-modulus selection, build the monodromy operator (or
// its matrix-free action) for the orbit's discretization, run the solver
// once, and return exponents sorted by descending real part with their
// eigenvectors aligned by index.
//
//	eng := floquet.Engine{Diag: dynsys.WriterDiag{W: os.Stderr}}
//	res, err := eng.Compute(wrapper, eigen.ArnoldiConfig{Tol: 1e-10}, 4)
//
// Working in log space stabilizes the comparison of multipliers of very
// different magnitude: real(log λ) = log|λ|, so sorting by descending real
// part is exactly a descending-modulus order.
package floquet
