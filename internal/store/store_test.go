package store

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/floq/internal/eigen"
	"github.com/san-kum/floq/internal/floquet"
)

func sampleResult() *floquet.Result {
	return &floquet.Result{
		Exponents: []complex128{0, complex(-2*math.Pi, 0.5)},
		Vectors:   [][]complex128{{1, 0}, {0, 1}},
		Converged: true,
		Stats:     eigen.Stats{Iterations: 12},
	}
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := st.Save("hopf", "shooting", "dense", 3, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatal(err)
	}
	if meta.System != "hopf" || meta.Method != "shooting" || meta.Solver != "dense" {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.K != 2 || !meta.Converged || meta.Iterations != 12 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
}

func TestSpectrumRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	res := sampleResult()
	id, err := st.Save("hopf", "shooting", "dense", 3, res)
	if err != nil {
		t.Fatal(err)
	}

	spectrum, err := st.Spectrum(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(spectrum) != len(res.Exponents) {
		t.Fatalf("expected %d exponents, got %d", len(res.Exponents), len(spectrum))
	}
	for i := range spectrum {
		if cmplx.Abs(spectrum[i]-res.Exponents[i]) > 1e-15 {
			t.Errorf("exponent %d: got %v, want %v", i, spectrum[i], res.Exponents[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save("hopf", "shooting", "dense", 3, sampleResult()); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].System != "hopf" {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}
