package linsolve

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

func TestDenseSolve(t *testing.T) {
	// (2I + J)x = rhs with J = [[0,1],[1,0]] gives the system [[2,1],[1,2]];
	// rhs (3,3) has solution (1,1).
	jac := mat.NewDense(2, 2, []float64{0, 1, 1, 0})

	x, err := Dense{}.Solve(jac, []float64{3, 3}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if math.Abs(x[i]-1) > 1e-14 {
			t.Errorf("component %d: got %v, want 1", i, x[i])
		}
	}
}

func TestDenseSolveSingular(t *testing.T) {
	// a0·I + a1·J vanishes identically for J = I, a0 = 1, a1 = -1.
	jac := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, err := Dense{}.Solve(jac, []float64{1, 1}, 1, -1)
	if !errors.Is(err, dynsys.ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}

func TestDenseSolveDimensionMismatch(t *testing.T) {
	jac := mat.NewDense(2, 2, nil)

	if _, err := (Dense{}).Solve(jac, []float64{1}, 1, 0); !errors.Is(err, dynsys.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for short rhs, got %v", err)
	}

	rect := mat.NewDense(2, 3, nil)
	if _, err := (Dense{}).Solve(rect, []float64{1, 1}, 1, 0); !errors.Is(err, dynsys.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch for non-square jacobian, got %v", err)
	}
}
