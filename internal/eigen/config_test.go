package eigen

import (
	"errors"
	"testing"

	"github.com/san-kum/floq/internal/dynsys"
)

func TestNormalizeForcesLargestModulus(t *testing.T) {
	cfgs := []Config{
		DenseConfig{Which: LargestReal, By: ByReal},
		ArnoldiConfig{Which: LargestReal, By: ByImag, Tol: 1e-8},
		SubspaceConfig{Which: SmallestModulus, By: ByReal, MaxIter: 10},
	}

	for _, cfg := range cfgs {
		got, err := Normalize(cfg)
		if err != nil {
			t.Fatalf("normalize %T: %v", cfg, err)
		}
		switch c := got.(type) {
		case DenseConfig:
			if c.Which != LargestModulus || c.By != ByModulus {
				t.Errorf("dense not normalized: %+v", c)
			}
		case ArnoldiConfig:
			if c.Which != LargestModulus || c.By != ByModulus {
				t.Errorf("arnoldi not normalized: which=%v by=%v", c.Which, c.By)
			}
			if c.Tol != 1e-8 {
				t.Errorf("arnoldi tol not preserved: %v", c.Tol)
			}
		case SubspaceConfig:
			if c.Which != LargestModulus || c.By != ByModulus {
				t.Errorf("subspace not normalized: %+v", c)
			}
			if c.MaxIter != 10 {
				t.Errorf("subspace maxiter not preserved: %v", c.MaxIter)
			}
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once, err := Normalize(DenseConfig{Which: LargestReal, By: ByImag})
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Normalize(once)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("normalize not idempotent: %+v vs %+v", once, twice)
	}

	sub1, err := Normalize(SubspaceConfig{Which: LargestReal, Tol: 1e-9, MaxIter: 7})
	if err != nil {
		t.Fatal(err)
	}
	sub2, err := Normalize(sub1)
	if err != nil {
		t.Fatal(err)
	}
	if sub1 != sub2 {
		t.Errorf("normalize not idempotent: %+v vs %+v", sub1, sub2)
	}
}

type bogusConfig struct{}

func (bogusConfig) family() string { return "bogus" }

func TestNormalizeUnsupportedFamily(t *testing.T) {
	_, err := Normalize(bogusConfig{})
	if !errors.Is(err, dynsys.ErrUnsupportedSolver) {
		t.Errorf("expected ErrUnsupportedSolver, got %v", err)
	}
}
