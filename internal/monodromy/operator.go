package monodromy

import "gonum.org/v1/gonum/mat"

// Operator is the linearization of the period map about a periodic orbit.
// Variants that cannot materialize the matrix return an error from Dense.
type Operator interface {
	Dim() int
	// Apply computes M·v without materializing the monodromy matrix.
	Apply(v []float64) ([]float64, error)
	// Dense materializes the monodromy matrix.
	Dense() (*mat.Dense, error)
}
