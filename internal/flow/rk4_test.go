package flow

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
)

// rotation is the harmonic oscillator dx/dt = y, dy/dt = -x. Its flow is a
// rotation, and so is its tangent flow.
type rotation struct{}

func (rotation) Dim() int { return 2 }

func (rotation) Derive(x dynsys.State, _ dynsys.Params) dynsys.State {
	return dynsys.State{x[1], -x[0]}
}

func (rotation) Jacobian(dynsys.State, dynsys.Params) *mat.Dense {
	return mat.NewDense(2, 2, []float64{0, 1, -1, 0})
}

func TestIntegrateAccuracy(t *testing.T) {
	fl := NewRK4Flow(rotation{}, 0.01)

	x, err := fl.Integrate(dynsys.State{1, 0}, nil, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(x[0]-math.Cos(1)) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], math.Cos(1))
	}
	if math.Abs(x[1]+math.Sin(1)) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], -math.Sin(1))
	}
}

func TestDifferentialFlowRotatesTangent(t *testing.T) {
	fl := NewRK4Flow(rotation{}, 1e-3)

	span := 0.7
	v, err := fl.DifferentialFlow(dynsys.State{1, 0}, nil, dynsys.State{1, 0}, span)
	if err != nil {
		t.Fatal(err)
	}

	// Tangent flow of a rotation rotates the tangent by the same angle.
	want := dynsys.State{math.Cos(span), -math.Sin(span)}
	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-8 {
			t.Errorf("component %d: got %.10f, want %.10f", i, v[i], want[i])
		}
	}
}

func TestDifferentialFlowPartialFinalStep(t *testing.T) {
	// A span that is not a multiple of Dt must land exactly on the span.
	fl := NewRK4Flow(rotation{}, 0.3)

	span := 1.0
	v, err := fl.DifferentialFlow(dynsys.State{0, 1}, nil, dynsys.State{0, 1}, span)
	if err != nil {
		t.Fatal(err)
	}

	want := dynsys.State{math.Sin(span), math.Cos(span)}
	for i := range v {
		if math.Abs(v[i]-want[i]) > 1e-4 {
			t.Errorf("component %d: got %.6f, want %.6f", i, v[i], want[i])
		}
	}
}

func TestDifferentialFlowDimensionMismatch(t *testing.T) {
	fl := NewRK4Flow(rotation{}, 1e-3)

	if _, err := fl.DifferentialFlow(dynsys.State{1, 0, 0}, nil, dynsys.State{1, 0}, 1); err == nil {
		t.Error("expected dimension mismatch for state")
	}
	if _, err := fl.DifferentialFlow(dynsys.State{1, 0}, nil, dynsys.State{1}, 1); err == nil {
		t.Error("expected dimension mismatch for tangent")
	}
}
