package eigen

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// diagOp is a diagonal matrix usable only through its action.
type diagOp struct {
	d []float64
}

func (o diagOp) Dim() int { return len(o.d) }

func (o diagOp) Apply(v []float64) ([]float64, error) {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = o.d[i] * v[i]
	}
	return out, nil
}

func TestSolveDenseLargestModulus(t *testing.T) {
	// Eigenvalues -5, 3, 1: largest-real order would put 3 first,
	// largest-modulus puts -5 first.
	m := mat.NewDense(3, 3, []float64{
		-5, 0, 0,
		0, 3, 0,
		0, 0, 1,
	})

	res, err := SolveDense(DenseConfig{Which: LargestModulus, By: ByModulus}, m, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Values) != 2 {
		t.Fatalf("expected 2 values, got %d", len(res.Values))
	}
	if math.Abs(real(res.Values[0])+5) > 1e-12 {
		t.Errorf("expected -5 first, got %v", res.Values[0])
	}
	if math.Abs(real(res.Values[1])-3) > 1e-12 {
		t.Errorf("expected 3 second, got %v", res.Values[1])
	}
	if !res.Converged {
		t.Error("dense solve should report converged")
	}
}

func TestSolveDenseEigenpairs(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{
		2, 1,
		0, 0.5,
	})

	res, err := SolveDense(DenseConfig{Which: LargestModulus, By: ByModulus}, m, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Each returned pair must satisfy M·v = λ·v.
	for i, lam := range res.Values {
		v := res.Vectors[i]
		for r := 0; r < 2; r++ {
			var mv complex128
			for c := 0; c < 2; c++ {
				mv += complex(m.At(r, c), 0) * v[c]
			}
			if cmplx.Abs(mv-lam*v[r]) > 1e-10 {
				t.Errorf("pair %d: residual %v at row %d", i, cmplx.Abs(mv-lam*v[r]), r)
			}
		}
	}
}

func TestSolveArnoldiDominantPairs(t *testing.T) {
	d := make([]float64, 40)
	for i := range d {
		d[i] = 10 * math.Pow(0.5, float64(i))
	}
	op := diagOp{d}

	res, err := SolveArnoldi(ArnoldiConfig{Which: LargestModulus, By: ByModulus, Tol: 1e-10, MaxDim: 40}, op, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Fatalf("arnoldi did not converge: %+v", res.Stats)
	}

	want := []float64{10, 5, 2.5}
	for i, w := range want {
		if cmplx.Abs(res.Values[i]-complex(w, 0)) > 1e-8 {
			t.Errorf("value %d: got %v, want %v", i, res.Values[i], w)
		}
	}
}

func TestSolveArnoldiResidualInvariant(t *testing.T) {
	op := diagOp{[]float64{4, 2, 1, 0.5}}

	res, err := SolveArnoldi(ArnoldiConfig{Tol: 1e-12}, op, 2)
	if err != nil {
		t.Fatal(err)
	}

	// Solver output keeps vector i attached to value i.
	for i, lam := range res.Values {
		v := res.Vectors[i]
		av := make([]complex128, len(v))
		for r := range v {
			av[r] = complex(op.d[r], 0) * v[r]
		}
		nrm, diff := 0.0, 0.0
		for r := range v {
			nrm += cmplx.Abs(v[r]) * cmplx.Abs(v[r])
			d := av[r] - lam*v[r]
			diff += cmplx.Abs(d) * cmplx.Abs(d)
		}
		if math.Sqrt(diff) > 1e-8*math.Sqrt(nrm) {
			t.Errorf("pair %d: relative residual %v", i, math.Sqrt(diff/nrm))
		}
	}
}

func TestSolveSubspaceDominantPairs(t *testing.T) {
	op := diagOp{[]float64{6, 3, 1, 0.2, 0.1}}

	res, err := SolveSubspace(SubspaceConfig{Tol: 1e-10, MaxIter: 500}, op, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Converged {
		t.Fatalf("subspace iteration did not converge: %+v", res.Stats)
	}
	if cmplx.Abs(res.Values[0]-6) > 1e-7 {
		t.Errorf("dominant value: got %v, want 6", res.Values[0])
	}
	if cmplx.Abs(res.Values[1]-3) > 1e-7 {
		t.Errorf("second value: got %v, want 3", res.Values[1])
	}
}
