package orbit

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/dynsys"
	"github.com/san-kum/floq/internal/flow"
	"github.com/san-kum/floq/internal/systems"
)

func TestShootingBufferInvariant(t *testing.T) {
	sys := systems.NewHopfCycle()
	prob := &ShootingProblem{Flow: flow.NewRK4Flow(sys, 1e-3), M: 3, N: 2}

	// Correct length: M·N+1 = 7.
	w := NewWrapper(prob, make(dynsys.State, 7), nil)
	if _, err := prob.Monodromy(w); err != nil {
		t.Errorf("valid buffer rejected: %v", err)
	}

	w = NewWrapper(prob, make(dynsys.State, 6), nil)
	if _, err := prob.Monodromy(w); !errors.Is(err, dynsys.ErrInvalidOrbit) {
		t.Errorf("expected ErrInvalidOrbit, got %v", err)
	}
}

func TestTrapezoidBufferInvariant(t *testing.T) {
	sys := systems.NewHopfCycle()
	prob := &TrapezoidProblem{Field: sys, M: 4}

	w := NewWrapper(prob, make(dynsys.State, 9), nil)
	if _, err := prob.Monodromy(w); err != nil {
		t.Errorf("valid buffer rejected: %v", err)
	}

	w = NewWrapper(prob, make(dynsys.State, 8), nil)
	if _, err := prob.Monodromy(w); !errors.Is(err, dynsys.ErrInvalidOrbit) {
		t.Errorf("expected ErrInvalidOrbit, got %v", err)
	}
}

func TestWrapperIsolatedFromCaller(t *testing.T) {
	sys := systems.NewHopfCycle()
	prob := &ShootingProblem{Flow: flow.NewRK4Flow(sys, 1e-3), M: 1, N: 2}

	buf := dynsys.State{1, 0, 6.28}
	params := dynsys.Params{0.5}
	w := NewWrapper(prob, buf, params)

	buf[0] = 99
	params[0] = 99
	if w.Orbit[0] != 1 || w.Params[0] != 0.5 {
		t.Error("wrapper must clone buffers at construction")
	}
}

func TestWithJacobianCopies(t *testing.T) {
	sys := systems.NewHopfCycle()
	prob := &ShootingProblem{Flow: flow.NewRK4Flow(sys, 1e-3), M: 1, N: 2}

	w := NewWrapper(prob, dynsys.State{1, 0, 6.28}, nil)
	if w.Jac != nil {
		t.Fatal("fresh wrapper should carry no jacobian")
	}
	w2 := w.WithJacobian(mat.NewDense(2, 2, nil))
	if w.Jac != nil {
		t.Error("WithJacobian must not mutate the receiver")
	}
	if w2.Jac == nil {
		t.Error("WithJacobian must set the jacobian on the copy")
	}
}

func TestStepFractionDefaults(t *testing.T) {
	sys := systems.NewHopfCycle()

	sp := &ShootingProblem{M: 4, N: 2}
	if got := sp.StepFraction(0); got != 0.25 {
		t.Errorf("shooting fraction: got %v, want 0.25", got)
	}

	tp := &TrapezoidProblem{Field: sys, M: 5}
	if got := tp.StepFraction(1); got != 0.25 {
		t.Errorf("trapezoid fraction: got %v, want 0.25", got)
	}

	tp.Fractions = []float64{0, 0.5, 0.2, 0.2, 0.1}
	if got := tp.StepFraction(2); got != 0.2 {
		t.Errorf("explicit fraction: got %v, want 0.2", got)
	}
}
