package eigen

import (
	"fmt"

	"github.com/san-kum/floq/internal/dynsys"
)

// Which selects the part of the spectrum an iterative solver targets.
type Which int

const (
	LargestModulus Which = iota
	LargestReal
	LargestImag
	SmallestModulus
)

func (w Which) String() string {
	switch w {
	case LargestModulus:
		return "largest-modulus"
	case LargestReal:
		return "largest-real"
	case LargestImag:
		return "largest-imag"
	case SmallestModulus:
		return "smallest-modulus"
	}
	return "unknown"
}

// By is the scalar comparison key candidates are ranked with once the
// solver has returned them.
type By int

const (
	ByModulus By = iota
	ByReal
	ByImag
)

// Config identifies an eigensolver family together with its selection
// criterion and comparison key. Configs are immutable values; Normalize
// returns adjusted copies.
type Config interface {
	family() string
}

// DenseConfig requests a dense factorization of the materialized matrix.
// Most solver families default to largest-real ordering; Normalize rewrites
// Which and By to modulus-based selection.
type DenseConfig struct {
	Which Which
	By    By
}

func (DenseConfig) family() string { return "dense" }

// ArnoldiConfig requests a matrix-free Arnoldi iteration.
type ArnoldiConfig struct {
	Which  Which
	By     By
	Tol    float64
	MaxDim int
	// Observer, when set, receives the worst Ritz residual after each
	// expansion of the Krylov basis.
	Observer func(iter int, residual float64)
}

func (ArnoldiConfig) family() string { return "arnoldi" }

// SubspaceConfig requests matrix-free block power iteration with
// Rayleigh-Ritz extraction.
type SubspaceConfig struct {
	Which   Which
	By      By
	Tol     float64
	MaxIter int
}

func (SubspaceConfig) family() string { return "subspace" }

// Normalize returns a config equivalent to cfg but guaranteed to request
// eigenvalues ranked by largest modulus. Skipping this before a monodromy
// eigen-computation silently misses bifurcations: the solver would return
// eigenvalues near the real axis instead of the dominant-modulus ones that
// signal a unit-circle crossing.
func Normalize(cfg Config) (Config, error) {
	switch c := cfg.(type) {
	case DenseConfig:
		c.Which = LargestModulus
		c.By = ByModulus
		return c, nil
	case ArnoldiConfig:
		c.Which = LargestModulus
		c.By = ByModulus
		return c, nil
	case SubspaceConfig:
		c.Which = LargestModulus
		c.By = ByModulus
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %T", dynsys.ErrUnsupportedSolver, cfg)
	}
}
